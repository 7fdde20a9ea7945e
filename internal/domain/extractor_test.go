package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

func TestExtractor_Extract(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []m.IncludeTarget
	}{
		{"empty file", "", []m.IncludeTarget{}},
		{"no includes", "int main(void) {\n  return 0;\n}\n", []m.IncludeTarget{}},
		{"quoted", `#include "lvgl.h"`, []m.IncludeTarget{"lvgl.h"}},
		{"angle", "#include <stdint.h>\n", []m.IncludeTarget{"stdint.h"}},
		{"tab separator", "#include\t\"lv_conf.h\"\n", []m.IncludeTarget{"lv_conf.h"}},
		{"no separator", "#include<string.h>\n", []m.IncludeTarget{"string.h"}},
		{"several spaces", "#include     \"a.h\"\n", []m.IncludeTarget{"a.h"}},
		{
			"separators preserved",
			"#include \"../../lv_conf_internal.h\"\n#include <misc/lv_area.h>\n",
			[]m.IncludeTarget{"../../lv_conf_internal.h", "misc/lv_area.h"},
		},
		{
			"source order",
			"#include \"b.h\"\nint x;\n#include <a.h>\n#include \"c.h\"\n",
			[]m.IncludeTarget{"b.h", "a.h", "c.h"},
		},
		{"one per line", `#include "a.h" #include "b.h"`, []m.IncludeTarget{"a.h"}},
		{"crlf line endings", "#include \"win.h\"\r\n#include <x.h>\r\n", []m.IncludeTarget{"win.h", "x.h"}},
		{"indented directive", "  #include \"nested.h\"\n", []m.IncludeTarget{"nested.h"}},
		{"space after hash is not matched", "# include \"spaced.h\"\n", []m.IncludeTarget{}},
		{"include_next is not matched", "#include_next <limits.h>\n", []m.IncludeTarget{}},
		{"macro include is not matched", "#include LV_CONF_PATH\n", []m.IncludeTarget{}},
		{"commented include still matches", "// #include \"old.h\"\n", []m.IncludeTarget{"old.h"}},
	}

	extractor := domain.NewExtractor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.Extract([]byte(tt.content))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractor_LongLine(t *testing.T) {
	long := make([]byte, 200*1024)
	for i := range long {
		long[i] = 'x'
	}

	content := string(long) + "\n#include \"after.h\"\n"

	got := domain.NewExtractor().Extract([]byte(content))
	assert.Equal(t, []m.IncludeTarget{"after.h"}, got)
}
