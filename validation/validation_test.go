package validation

import (
	"strings"
	"testing"

	"github.com/jerry-maheswara-github/supplier-kit/errors"
)

type groupDef struct {
	Name    string   `yaml:"name" validate:"required"`
	Members []string `yaml:"members" validate:"required,min=1"`
}

func TestValidateValid(t *testing.T) {
	def := groupDef{Name: "marketplace", Members: []string{"s1", "s2"}}
	if err := Validate(def); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateMissingName(t *testing.T) {
	def := groupDef{Members: []string{"s1"}}
	err := Validate(def)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %q", appErr.Code)
	}
	if !strings.Contains(appErr.Detail, "name is required") {
		t.Errorf("expected field name in detail, got %q", appErr.Detail)
	}
}

func TestValidateEmptyMembers(t *testing.T) {
	def := groupDef{Name: "g", Members: []string{}}
	err := Validate(def)
	if err == nil {
		t.Fatal("expected validation error for empty members")
	}
	appErr, _ := errors.AsAppError(err)
	if !strings.Contains(appErr.Detail, "members") {
		t.Errorf("expected members in detail, got %q", appErr.Detail)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"Name":       "name",
		"GroupName":  "group_name",
		"noChange":   "no_change",
		"lowercased": "lowercased",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
