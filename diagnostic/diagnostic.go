// Package diagnostic collects non-fatal notices raised while classifying and
// folding types. Fatal failures travel as errors; everything that degrades
// instead of aborting lands here.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Category classifies diagnostics for filtering.
type Category string

const (
	// CategoryTypeUnsupported marks constructs the engine degrades on:
	// tuple rest elements and function argument/return types.
	CategoryTypeUnsupported Category = "type-unsupported"
	// CategoryDeclarationInvalid marks declaration shapes the driver cannot
	// fully honor, e.g. multi-binding variable statements.
	CategoryDeclarationInvalid Category = "declaration-invalid"
	// CategoryConfigInvalid marks problems with the traversal configuration.
	CategoryConfigInvalid Category = "config-invalid"
)

// Diagnostic is a single structured notice.
type Diagnostic struct {
	Severity Severity
	Category Category
	// Subject names what the notice is about: a type's display text or a
	// declaration name.
	Subject string
	Message string
}

// String formats the diagnostic for display.
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(d.Severity.String())
	sb.WriteString(": ")
	if d.Category != "" {
		fmt.Fprintf(&sb, "[%s] ", d.Category)
	}
	if d.Subject != "" {
		fmt.Fprintf(&sb, "%s: ", d.Subject)
	}
	sb.WriteString(d.Message)
	return sb.String()
}

// Collector accumulates diagnostics during a traversal run. All methods are
// safe on a nil receiver, so callers that do not care about notices may pass
// nil throughout.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Warn records a warning.
func (c *Collector) Warn(category Category, subject, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityWarning,
		Category: category,
		Subject:  subject,
		Message:  message,
	})
}

// Error records an error-level notice.
func (c *Collector) Error(category Category, subject, message string) {
	if c == nil {
		return
	}
	c.diagnostics = append(c.diagnostics, Diagnostic{
		Severity: SeverityError,
		Category: category,
		Subject:  subject,
		Message:  message,
	})
}

// Diagnostics returns everything collected so far, in emission order.
func (c *Collector) Diagnostics() []Diagnostic {
	if c == nil {
		return nil
	}
	return c.diagnostics
}

// WarningCount returns the number of warnings collected.
func (c *Collector) WarningCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, d := range c.diagnostics {
		if d.Severity == SeverityWarning {
			count++
		}
	}
	return count
}

// HasErrors reports whether any error-level notices were collected.
func (c *Collector) HasErrors() bool {
	if c == nil {
		return false
	}
	for _, d := range c.diagnostics {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// FormatAll renders every diagnostic on its own line.
func (c *Collector) FormatAll() string {
	if c == nil || len(c.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, d := range c.diagnostics {
		sb.WriteString(d.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
