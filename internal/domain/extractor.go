// Package domain contains the include resolver and the companion source
// maintenance tools.
package domain

import (
	"bufio"
	"bytes"
	"regexp"

	m "hdrcheck.dev/pkg/hdrcheck/internal/model"
)

// includePattern matches `#include "x"` and `#include <x>` alike.
var includePattern = regexp.MustCompile(`#include[ \t]*[<"]([^">]+)[">]`)

// Extractor yields the include targets referenced by a file's text.
type Extractor interface {
	Extract(content []byte) []m.IncludeTarget
}

type extractor struct{}

// NewExtractor returns the line-oriented regex extractor.
func NewExtractor() Extractor {
	return &extractor{}
}

// Extract returns include targets in source order, at most one per line.
// Comments, string literals and conditional blocks are not interpreted.
func (e *extractor) Extract(content []byte) []m.IncludeTarget {
	targets := make([]m.IncludeTarget, 0)

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)

	for sc.Scan() {
		line := sc.Bytes()
		if bytes.IndexByte(line, '#') < 0 {
			continue
		}

		match := includePattern.FindSubmatch(line)
		if match == nil {
			continue
		}

		targets = append(targets, m.IncludeTarget(match[1]))
	}

	return targets
}
