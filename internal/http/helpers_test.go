package http

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatPounds(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"123.45", "£123.45"},
		{"-50", "-£50.00"},
		{"0", "£0.00"},
		{"0.5", "£0.50"},
		{"-0.01", "-£0.01"},
		{"1234.5", "£1234.50"},
	}

	for _, tt := range tests {
		v := decimal.RequireFromString(tt.value)
		if got := formatPounds(v); got != tt.want {
			t.Errorf("formatPounds(%s) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"statement.csv", "statement.csv"},
		{"  statement.csv  ", "statement.csv"},
		{"/etc/passwd", "passwd"},
		{"../../escape.csv", "escape.csv"},
		{"bad\x00name.csv", "badname.csv"},
		{".", ""},
	}

	for _, tt := range tests {
		if got := sanitizeFilename(tt.in); got != tt.want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAllowedUploadExt(t *testing.T) {
	allowed := []string{"a.csv", "a.txt", "A.CSV", "bank statement.Txt"}
	for _, name := range allowed {
		if !allowedUploadExt(name) {
			t.Errorf("allowedUploadExt(%q) = false, want true", name)
		}
	}

	denied := []string{"a.pdf", "a.csv.exe", "a", "csv"}
	for _, name := range denied {
		if allowedUploadExt(name) {
			t.Errorf("allowedUploadExt(%q) = true, want false", name)
		}
	}
}
