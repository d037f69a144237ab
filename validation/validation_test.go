package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/streamkit/errors"
)

type testConfig struct {
	Name       string `mapstructure:"name" validate:"required"`
	BufferSize int    `mapstructure:"buffer_size" validate:"gt=0"`
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func TestValidate_Passes(t *testing.T) {
	cfg := testConfig{Name: "stream", BufferSize: 128, Level: "info"}
	if err := Validate(cfg); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	cfg := testConfig{BufferSize: -1, Level: "loud"}
	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", errors.CodeOf(err))
	}
	msg := err.Error()
	for _, want := range []string{"name: is required", "buffer_size: must be greater than 0", "level: must be one of"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestValidator_Collects(t *testing.T) {
	v := New()
	v.Check(true, "name", "is required")
	if v.HasErrors() {
		t.Fatal("passing check must not record an error")
	}
	v.Check(false, "level", "must be one of: debug info")
	v.AddError("format", "is invalid")
	if got := len(v.Errors()); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}
	err := v.Err()
	if !errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestValidator_ErrNilWhenClean(t *testing.T) {
	if err := New().Err(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	if got := toSnakeCase("BufferSize"); got != "buffer_size" {
		t.Errorf("toSnakeCase = %q", got)
	}
}
