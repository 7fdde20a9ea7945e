package model

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFile(t *testing.T) {
	root := filepath.Join("work", "firmware")

	tests := []struct {
		name      string
		fullPath  Path
		wantShort Path
	}{
		{"top level", Path(filepath.Join(root, "main.c")), "main.c"},
		{"nested", Path(filepath.Join(root, "lib", "lvgl", "lvgl.h")), "lib/lvgl/lvgl.h"},
		{"outside root", Path(filepath.Join("elsewhere", "x.h")), Path(filepath.ToSlash(filepath.Join("elsewhere", "x.h")))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := NewFile(Path(root), tt.fullPath)
			assert.Equal(t, tt.fullPath, file.FullPath)
			assert.Equal(t, tt.wantShort, file.ShortPath)
		})
	}
}

func TestExtensions(t *testing.T) {
	exts := NewExtensions(".c", "h", " ", "")

	assert.Len(t, exts, 2)
	assert.True(t, exts.Match("src/main.c"))
	assert.True(t, exts.Match("include/app.h"))
	assert.False(t, exts.Match("src/main.cpp"))
	assert.False(t, exts.Match("Makefile"))
}

func TestReportOK(t *testing.T) {
	assert.True(t, Report{}.OK())
	assert.False(t, Report{Missing: []ResolutionRecord{{Target: "x.h", Status: Missing}}}.OK())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "status(7)", Status(7).String())
}
