package diagnostic

import "testing"

func TestCollectorOrderAndCounts(t *testing.T) {
	c := NewCollector()
	c.Warn(CategoryTypeUnsupported, "[string, ...number[]]", "rest omitted")
	c.Error(CategoryConfigInvalid, "", "no file names")
	c.Warn(CategoryDeclarationInvalid, "a, b", "multiple bindings")

	diags := c.Diagnostics()
	if len(diags) != 3 {
		t.Fatalf("got %d diagnostics, want 3", len(diags))
	}
	if diags[0].Severity != SeverityWarning || diags[1].Severity != SeverityError {
		t.Errorf("emission order not preserved: %v", diags)
	}
	if got := c.WarningCount(); got != 2 {
		t.Errorf("WarningCount = %d, want 2", got)
	}
	if !c.HasErrors() {
		t.Error("HasErrors = false, want true")
	}
}

func TestCollectorNilSafe(t *testing.T) {
	var c *Collector
	c.Warn(CategoryTypeUnsupported, "x", "ignored")
	c.Error(CategoryConfigInvalid, "y", "ignored")
	if c.Diagnostics() != nil {
		t.Error("nil collector returned diagnostics")
	}
	if c.WarningCount() != 0 || c.HasErrors() {
		t.Error("nil collector reported counts")
	}
	if c.FormatAll() != "" {
		t.Error("nil collector formatted output")
	}
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		d    Diagnostic
		want string
	}{
		{
			Diagnostic{Severity: SeverityWarning, Category: CategoryTypeUnsupported, Subject: "() => void", Message: "payloads not resolved"},
			"warning: [type-unsupported] () => void: payloads not resolved",
		},
		{
			Diagnostic{Severity: SeverityError, Message: "bare"},
			"error: bare",
		},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFormatAll(t *testing.T) {
	c := NewCollector()
	if c.FormatAll() != "" {
		t.Error("empty collector formatted output")
	}
	c.Warn(CategoryTypeUnsupported, "a", "one")
	c.Warn(CategoryTypeUnsupported, "b", "two")
	want := "warning: [type-unsupported] a: one\nwarning: [type-unsupported] b: two\n"
	if got := c.FormatAll(); got != want {
		t.Errorf("FormatAll = %q, want %q", got, want)
	}
}
