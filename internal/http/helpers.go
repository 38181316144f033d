package http

import (
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// formatPounds renders a decimal value as a pound string, with the
// sign ahead of the symbol (e.g. "-£50.00").
func formatPounds(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-£" + v.Abs().StringFixed(2)
	}
	return "£" + v.StringFixed(2)
}

// sanitizeFilename keeps only the base name of an uploaded file and
// strips control characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, name)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

// allowedUploadExt reports whether the upload has an accepted
// extension. Banks export midata as .csv, occasionally .txt.
func allowedUploadExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return true
	}
	return false
}
