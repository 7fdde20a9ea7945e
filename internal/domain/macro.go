package domain

import (
	"fmt"
	"regexp"
)

// DefaultMacro is the export macro audited and patched by default.
const DefaultMacro = "LV_EXPORT_CONST_INT"

var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func validateMacro(name string) error {
	if !identPattern.MatchString(name) {
		return fmt.Errorf("%w: macro name %q is not an identifier", ErrInvalidConfiguration, name)
	}

	return nil
}

// callPattern matches any invocation of macro, e.g. `NAME (`.
func callPattern(macro string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(macro) + `\s*\(`)
}

// definePattern matches the macro's own #define line.
func definePattern(macro string) *regexp.Regexp {
	return regexp.MustCompile(`#\s*define\s+` + regexp.QuoteMeta(macro) + `\b`)
}

// singleArgPattern matches a one-argument statement `NAME(X);` and captures X.
func singleArgPattern(macro string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(macro) + `\s*\(\s*([A-Za-z0-9_]+)\s*\)\s*;`)
}
