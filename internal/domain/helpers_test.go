package domain_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"hdrcheck.dev/pkg/hdrcheck/internal/adapter"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// writeTree creates files under root; keys are slash-separated relative paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

var errUnreadable = errors.New("unreadable")

// recordingFSAdapter records IsFile calls and can fail reads for chosen files.
type recordingFSAdapter struct {
	adapter.SourceFSAdapter

	mu         sync.Mutex
	lookups    []m.Path
	unreadable map[m.Path]bool
}

func newRecordingFSAdapter() *recordingFSAdapter {
	return &recordingFSAdapter{
		SourceFSAdapter: adapter.NewLocalSourceFSAdapter(),
		unreadable:      map[m.Path]bool{},
	}
}

func (p *recordingFSAdapter) IsFile(path m.Path) bool {
	p.mu.Lock()
	p.lookups = append(p.lookups, path)
	p.mu.Unlock()

	return p.SourceFSAdapter.IsFile(path)
}

func (p *recordingFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	if p.unreadable[path] {
		return nil, errUnreadable
	}

	return p.SourceFSAdapter.ReadFile(path)
}
