//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// Default target grade levels per category, matching the analyzer's
// conventional defaults (Dialogue 5, Math Problem 3, Narration 4).
const (
	DefaultDialogueTarget    = 5
	DefaultMathProblemTarget = 3
	DefaultNarrationTarget   = 4
)

// TargetMap maps a zone category to its maximum acceptable reading grade.
// It is supplied by the caller per call and never mutated by the engine.
type TargetMap map[Category]int

// TargetConfig holds the per-category target grades as configured by the caller.
// Grades are whole school grades in the 1-8 range.
type TargetConfig struct {
	Dialogue    int `json:"dialogue" validate:"required,min=1,max=8"`
	MathProblem int `json:"math_problem" validate:"required,min=1,max=8"`
	Narration   int `json:"narration" validate:"required,min=1,max=8"`
}

// DefaultTargets returns the conventional default target configuration.
func DefaultTargets() TargetConfig {
	return TargetConfig{
		Dialogue:    DefaultDialogueTarget,
		MathProblem: DefaultMathProblemTarget,
		Narration:   DefaultNarrationTarget,
	}
}

// Validate validates the TargetConfig using the validator.
func (t *TargetConfig) Validate() error {
	validate := validator.New()
	return validate.Struct(t)
}

// Map converts the configuration to the caller-owned TargetMap consumed by
// the summary and annotation projections.
func (t TargetConfig) Map() TargetMap {
	return TargetMap{
		CategoryDialogue:    t.Dialogue,
		CategoryMathProblem: t.MathProblem,
		CategoryNarration:   t.Narration,
	}
}
