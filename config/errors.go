package config

import (
	"fmt"
	"strings"
)

// Kind classifies a validation failure.
type Kind string

const (
	InvalidSiteURL        Kind = "InvalidSiteUrl"
	InvalidBasePath       Kind = "InvalidBasePath"
	InvalidOutputDir      Kind = "InvalidOutputDir"
	InvalidTitle          Kind = "InvalidTitle"
	InvalidHeadDirective  Kind = "InvalidHeadDirective"
	InvalidSocialLink     Kind = "InvalidSocialLink"
	InvalidStylesheetPath Kind = "InvalidStylesheetPath"
)

// Violation is a single problem found while composing a SiteConfig.
type Violation struct {
	Kind    Kind
	Field   string      // e.g. "head[2].attrs.src"
	Value   interface{} // offending value, if any
	Message string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %s: %s", v.Kind, v.Field, v.Message)
}

// ValidationError bundles every violation found by Compose, in detection order.
type ValidationError struct {
	violations []Violation
}

// Violations returns a copy of the collected violations.
func (e *ValidationError) Violations() []Violation {
	out := make([]Violation, len(e.violations))
	copy(out, e.violations)
	return out
}

// Kinds returns the distinct violation kinds in first-seen order.
func (e *ValidationError) Kinds() []Kind {
	var kinds []Kind
	seen := make(map[Kind]bool)
	for _, v := range e.violations {
		if !seen[v.Kind] {
			seen[v.Kind] = true
			kinds = append(kinds, v.Kind)
		}
	}
	return kinds
}

// Has reports whether any violation is of the given kind.
func (e *ValidationError) Has(kind Kind) bool {
	for _, v := range e.violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

func (e *ValidationError) Error() string {
	switch len(e.violations) {
	case 0:
		return ""
	case 1:
		return "invalid site config: " + e.violations[0].Error()
	}

	msgs := make([]string, len(e.violations))
	for i, v := range e.violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("invalid site config (%d violations): %s", len(e.violations), strings.Join(msgs, "; "))
}

// collector accumulates violations for one validation class at a time.
type collector struct {
	kind       Kind
	violations []Violation
}

func (c *collector) add(field, message string, value interface{}) {
	c.violations = append(c.violations, Violation{
		Kind:    c.kind,
		Field:   field,
		Value:   value,
		Message: message,
	})
}

func (c *collector) err() error {
	if len(c.violations) == 0 {
		return nil
	}
	return &ValidationError{violations: c.violations}
}
