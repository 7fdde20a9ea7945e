package model

// MacroCall is one line that invokes the audited macro.
type MacroCall struct {
	File File
	Line int
	Text string // trimmed source line
}

// Patch describes one rewritten macro invocation.
type Patch struct {
	File     File
	Line     int
	Constant string
	Before   string
	After    string
}

// FilePatch groups the patches applied to a single file.
type FilePatch struct {
	File    File
	Patches []Patch
	// Diff is a unified diff of the change, filled in for dry runs.
	Diff string
}

// ConfigCopy records a directory that received a copy of the master config.
type ConfigCopy struct {
	Dir         Path
	Destination Path
	// Trigger is the first file in Dir that references the config.
	Trigger Path
}
