package model

import "fmt"

// IncludeTarget is a header name exactly as written between the #include
// delimiters, with the quotes or angle brackets stripped.
type IncludeTarget string

// Status is the outcome of resolving one include directive.
type Status int

const (
	// Resolved indicates the header was located.
	Resolved Status = iota
	// Missing indicates every search location was exhausted.
	Missing
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case Missing:
		return "missing"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalYAML stores the status by name.
func (s Status) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}

// UnmarshalYAML parses a status stored by name.
func (s *Status) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}

	switch name {
	case "resolved":
		*s = Resolved
	case "missing":
		*s = Missing
	default:
		return fmt.Errorf("unknown status %q", name)
	}

	return nil
}

// ResolutionRecord is one (including file, include target) pair and its outcome.
type ResolutionRecord struct {
	File   File          `yaml:"file"`
	Target IncludeTarget `yaml:"target"`
	Status Status        `yaml:"status"`
}

// ScanStats summarises one scan.
type ScanStats struct {
	Files     int `yaml:"files"`
	Skipped   int `yaml:"skipped"`
	Includes  int `yaml:"includes"`
	CacheHits int `yaml:"cache_hits"`
	Resolved  int `yaml:"resolved"`
	Missing   int `yaml:"missing"`
}

// Report is the result of scanning a source tree.
type Report struct {
	Root Path `yaml:"root"`
	// Missing holds every unresolved include in traversal order.
	Missing []ResolutionRecord `yaml:"missing"`
	Stats   ScanStats          `yaml:"stats"`
}

// OK reports whether every include was resolved.
func (r Report) OK() bool {
	return len(r.Missing) == 0
}
