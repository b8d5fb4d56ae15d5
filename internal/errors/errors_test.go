package errors

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{"unmapped enum", CodeUnmappedEnum, "Unmapped enum value", CategoryRuntime},
		{"unbalanced scope", CodeUnbalancedScope, "Unbalanced builder scope", CategoryRuntime},
		{"config not found", CodeConfigNotFound, "Configuration file not found", CategoryConfig},
		{"unknown code", "T999", "Unknown error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestUnmappedEnum(t *testing.T) {
	err := UnmappedEnum("MouseEvent", 42)

	if !strings.Contains(err.Error(), "42") {
		t.Errorf("Error() = %q, want offending value", err.Error())
	}
	if !strings.Contains(err.Error(), "MouseEvent") {
		t.Errorf("Error() = %q, want enum kind", err.Error())
	}
	if !stderrors.Is(err, ErrUnmappedEnum) {
		t.Error("errors.Is(err, ErrUnmappedEnum) = false")
	}
	if stderrors.Is(err, ErrUnbalancedScope) {
		t.Error("errors.Is(err, ErrUnbalancedScope) = true")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("binding click: %w", UnmappedEnum("MouseEvent", -1))
	if !stderrors.Is(wrapped, ErrUnmappedEnum) {
		t.Error("errors.Is through fmt wrapping = false")
	}

	var te *Error
	if !stderrors.As(wrapped, &te) {
		t.Fatal("errors.As failed")
	}
	if te.Code != CodeUnmappedEnum {
		t.Errorf("Code = %q", te.Code)
	}
}

func TestWrapAndFromError(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := FromError(cause, CodeInvalidConfig)
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable")
	}
	if err.Code != CodeInvalidConfig {
		t.Errorf("Code = %q", err.Code)
	}

	if FromError(nil, CodeInvalidConfig) != nil {
		t.Error("FromError(nil) should be nil")
	}

	orig := New(CodeNonMonotonic)
	if got := FromError(orig, CodeInvalidConfig); got != orig {
		t.Error("FromError should return existing *Error unchanged")
	}
}

func TestFormat(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	err := UnmappedEnum("FocusEvent", 9)
	out := err.Format()

	for _, want := range []string{"ERROR T001: Unmapped enum value", "'9'", "Hint:", "Learn more:"} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New(CodeUnbalancedScope).WithDetail("2 scopes left open")
	want := "T010: Unbalanced builder scope (2 scopes left open)"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFprintError(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	var buf bytes.Buffer
	FprintError(&buf, stderrors.New("plain"))
	if !strings.Contains(buf.String(), "ERROR: plain") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	FprintError(&buf, New(CodeConfigNotFound))
	if !strings.Contains(buf.String(), "T021") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five six seven", 10)
	for _, l := range lines {
		if len(l) > 10 {
			t.Errorf("line %q exceeds width", l)
		}
	}
	if strings.Join(lines, " ") != "one two three four five six seven" {
		t.Errorf("wrapText lost words: %v", lines)
	}
	if wrapText("", 10) != nil {
		t.Error("wrapText(\"\") should be nil")
	}
}

func TestRegistryTemplates(t *testing.T) {
	for code, tmpl := range registry {
		if tmpl.Category == "" || tmpl.Message == "" || tmpl.DocURL == "" {
			t.Errorf("code %s has incomplete template: %+v", code, tmpl)
		}
		if err := New(code); !stderrors.Is(err, &Error{Code: code}) {
			t.Errorf("New(%s) does not match its own code", code)
		}
	}
}

func TestSetColor(t *testing.T) {
	defer SetColor(true)

	SetColor(true)
	if !strings.Contains(New(CodeUnmappedEnum).Format(), colorRed) {
		t.Error("Format() without ANSI codes while color enabled")
	}

	SetColor(false)
	if strings.Contains(New(CodeUnmappedEnum).Format(), "\033[") {
		t.Error("Format() contains ANSI codes while color disabled")
	}
}
