package domain_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

const btnHeader = `#pragma once
    LV_EXPORT_CONST_INT(LV_BTN_SIZE);  /* size */
LV_EXPORT_CONST_INT( LV_BTN_PAD ) ;
LV_EXPORT_CONST_INT(LV_BTN_DONE, LV_BTN_DONE);
`

const btnHeaderPatched = `#pragma once
    LV_EXPORT_CONST_INT(LV_BTN_SIZE, LV_BTN_SIZE);  /* size */
LV_EXPORT_CONST_INT(LV_BTN_PAD, LV_BTN_PAD);
LV_EXPORT_CONST_INT(LV_BTN_DONE, LV_BTN_DONE);
`

func patchArgs(root string) domain.PatchArgs {
	return domain.PatchArgs{
		Root:       m.Path(root),
		Macro:      domain.DefaultMacro,
		Extensions: domain.DefaultExtensions,
	}
}

func TestPatcher_RewritesSingleArgumentCalls(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"widgets/btn.h": btnHeader,
		"core/obj.c":    "int main(void) { return 0; }\n",
	})

	patched, err := domain.NewPatcher(adapter.NewLocalSourceFSAdapter()).Patch(context.Background(), patchArgs(root))

	require.NoError(t, err)
	require.Len(t, patched, 1)

	fp := patched[0]
	assert.Equal(t, m.Path("widgets/btn.h"), fp.File.ShortPath)
	assert.Empty(t, fp.Diff)
	require.Len(t, fp.Patches, 2)

	assert.Equal(t, 2, fp.Patches[0].Line)
	assert.Equal(t, "LV_BTN_SIZE", fp.Patches[0].Constant)
	assert.Equal(t, "    LV_EXPORT_CONST_INT(LV_BTN_SIZE);  /* size */", fp.Patches[0].Before)
	assert.Equal(t, "    LV_EXPORT_CONST_INT(LV_BTN_SIZE, LV_BTN_SIZE);  /* size */", fp.Patches[0].After)

	assert.Equal(t, 3, fp.Patches[1].Line)
	assert.Equal(t, "LV_BTN_PAD", fp.Patches[1].Constant)

	assert.Equal(t, btnHeaderPatched, readFile(t, filepath.Join(root, "widgets", "btn.h")))
}

func TestPatcher_SecondRunIsNoop(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"btn.h": btnHeader})

	p := domain.NewPatcher(adapter.NewLocalSourceFSAdapter())

	_, err := p.Patch(context.Background(), patchArgs(root))
	require.NoError(t, err)

	again, err := p.Patch(context.Background(), patchArgs(root))
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.Equal(t, btnHeaderPatched, readFile(t, filepath.Join(root, "btn.h")))
}

func TestPatcher_DryRunLeavesFilesAlone(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"btn.h": btnHeader})

	args := patchArgs(root)
	args.DryRun = true

	patched, err := domain.NewPatcher(adapter.NewLocalSourceFSAdapter()).Patch(context.Background(), args)

	require.NoError(t, err)
	require.Len(t, patched, 1)
	assert.Len(t, patched[0].Patches, 2)
	assert.Equal(t, btnHeader, readFile(t, filepath.Join(root, "btn.h")))

	diff := patched[0].Diff
	assert.Contains(t, diff, "--- a/btn.h")
	assert.Contains(t, diff, "+++ b/btn.h")
	assert.Contains(t, diff, "-    LV_EXPORT_CONST_INT(LV_BTN_SIZE);  /* size */")
	assert.Contains(t, diff, "+    LV_EXPORT_CONST_INT(LV_BTN_SIZE, LV_BTN_SIZE);  /* size */")
	assert.Contains(t, diff, "+LV_EXPORT_CONST_INT(LV_BTN_PAD, LV_BTN_PAD);")
}

func TestPatcher_PreservesPermissions(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"btn.h": btnHeader})

	path := filepath.Join(root, "btn.h")
	require.NoError(t, os.Chmod(path, 0o640))

	_, err := domain.NewPatcher(adapter.NewLocalSourceFSAdapter()).Patch(context.Background(), patchArgs(root))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestPatcher_InvalidMacro(t *testing.T) {
	args := patchArgs(t.TempDir())
	args.Macro = "NOT A MACRO"

	_, err := domain.NewPatcher(adapter.NewLocalSourceFSAdapter()).Patch(context.Background(), args)

	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}
