// Package types provides type definitions for structured data used throughout the readability analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Category identifies the kind of content a tagged zone holds.
// Values serialize as their display labels so exported data matches reports.
type Category string

const (
	CategoryDialogue    Category = "Dialogue"
	CategoryMathProblem Category = "Math Problem"
	CategoryNarration   Category = "Narration"
)

// Categories returns all valid zone categories in display order.
func Categories() []Category {
	return []Category{CategoryDialogue, CategoryMathProblem, CategoryNarration}
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryDialogue, CategoryMathProblem, CategoryNarration:
		return true
	}
	return false
}

// ParseCategory converts a label to a Category.
// It accepts the display labels exactly ("Dialogue", "Math Problem", "Narration").
func ParseCategory(label string) (Category, error) {
	c := Category(label)
	if !c.Valid() {
		return "", fmt.Errorf("unknown zone category: %q", label)
	}
	return c, nil
}

// Zone represents a tagged passage of text analyzed against a target grade.
// Zones are immutable once created; Text is always non-empty after trimming.
type Zone struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}
