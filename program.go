package usererror

import (
	"os"
	"path/filepath"
	"strings"
)

const fallbackProgramName = "The application"

// programName returns the file stem of the invoked executable, or
// "The application" when it cannot be determined.
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return fallbackProgramName
	}
	base := filepath.Base(args[0])
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return fallbackProgramName
	}
	return stem
}

// defaultSummary is the placeholder used whenever a Message would otherwise
// have an empty summary.
func defaultSummary() string {
	return programName(os.Args) + " encountered an unknown error"
}
