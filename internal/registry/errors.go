// Package registry owns the ordered collection of tagged zones.
package registry

import (
	"fmt"

	"github.com/jonathan/readability-analyzer/internal/types"
)

// BlankZoneError indicates an attempt to add a zone with blank text.
// The zone is rejected before it is created.
type BlankZoneError struct{}

func (e *BlankZoneError) Error() string {
	return "zone text is blank"
}

// PositionError indicates a removal at a position outside the registry bounds.
// The registry is left unchanged.
type PositionError struct {
	Position int
	Size     int
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("zone position %d out of range (registry holds %d zones)", e.Position, e.Size)
}

// UnknownCategoryError indicates a category with no target-grade entry, or a
// category outside the enumerated values. This is a configuration defect and
// is reported rather than silently defaulted.
type UnknownCategoryError struct {
	Category types.Category
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("no target grade configured for category %q", string(e.Category))
}
