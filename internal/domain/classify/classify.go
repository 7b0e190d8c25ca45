// Package classify buckets a systolic/diastolic pair into a clinical
// blood-pressure category.
package classify

// Category is a clinical blood-pressure classification label.
type Category string

// The five categories. Unknown is only reachable for readings outside the
// estimator's clamped ranges, i.e. raw legacy input.
const (
	Normal   Category = "Normal"
	Elevated Category = "Elevated"
	Stage1   Category = "Hypertension Stage 1"
	Stage2   Category = "Hypertension Stage 2"
	Unknown  Category = "Unknown"
)

// Classification thresholds in mmHg.
const (
	normalSystolicMax   = 120
	normalDiastolicMax  = 80
	elevatedSystolicMax = 130
	stage1SystolicMax   = 140
	stage1DiastolicMax  = 90
)

// Reading rules are evaluated in order; the first match wins. The order
// matters: 120/80 falls through to Stage1 because diastolic 80 fails the
// strict `< 80` checks of the first two rules.
func Reading(systolic, diastolic float64) Category {
	switch {
	case systolic < normalSystolicMax && diastolic < normalDiastolicMax:
		return Normal
	case systolic >= normalSystolicMax && systolic < elevatedSystolicMax && diastolic < normalDiastolicMax:
		return Elevated
	case (systolic >= elevatedSystolicMax && systolic < stage1SystolicMax) ||
		(diastolic >= normalDiastolicMax && diastolic < stage1DiastolicMax):
		return Stage1
	case systolic >= stage1SystolicMax || diastolic >= stage1DiastolicMax:
		return Stage2
	default:
		return Unknown
	}
}

// String returns the category label.
func (c Category) String() string {
	return string(c)
}
