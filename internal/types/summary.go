//nolint:revive // types is a standard Go package name pattern
package types

// Status reports whether a zone's estimated grade is within its target.
type Status string

const (
	StatusOnTarget    Status = "On Target"
	StatusAboveTarget Status = "Above Target"
)

// StatusFor derives the status from an estimated grade and a target grade.
// A grade at or below the target is on target; strictly above is above target.
func StatusFor(estimatedGrade float64, targetGrade int) Status {
	if estimatedGrade > float64(targetGrade) {
		return StatusAboveTarget
	}
	return StatusOnTarget
}

// ZoneSummary holds the derived statistics for a single tagged zone.
type ZoneSummary struct {
	Category       Category `json:"zone_type"`
	Words          int      `json:"words"`
	EstimatedGrade float64  `json:"estimated_grade"`
	TargetGrade    int      `json:"target_grade"`
	Status         Status   `json:"status"`
}
