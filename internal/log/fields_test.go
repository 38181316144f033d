package log

import (
	"errors"
	"testing"
)

func TestFieldsBuilder(t *testing.T) {
	f := NewFields().
		WithComponent(ComponentStatement).
		WithOperation(OpUpload).
		WithStatement("st-1", "feb.csv", 12).
		WithError(errors.New("boom"))

	want := map[string]any{
		FieldComponent:   ComponentStatement,
		FieldOperation:   OpUpload,
		FieldStatementID: "st-1",
		FieldFilename:    "feb.csv",
		FieldRows:        12,
		FieldError:       "boom",
	}
	for k, v := range want {
		if f[k] != v {
			t.Errorf("f[%q] = %v, want %v", k, f[k], v)
		}
	}

	if got := len(f.ToSlice()); got != len(f)*2 {
		t.Errorf("ToSlice len = %d, want %d", got, len(f)*2)
	}
}

func TestFieldsWithErrorNil(t *testing.T) {
	f := NewFields().WithError(nil)
	if _, ok := f[FieldError]; ok {
		t.Error("nil error should not add a field")
	}
}

func TestFieldsHTTP(t *testing.T) {
	f := NewFields().
		WithHTTPRequest("POST", "/statements", "203.0.113.5").
		WithHTTPResponse(422, 3)

	if f[FieldMethod] != "POST" || f[FieldPath] != "/statements" {
		t.Errorf("request fields = %v", f)
	}
	if f[FieldSuccess] != false {
		t.Errorf("422 should not be success: %v", f[FieldSuccess])
	}
}
