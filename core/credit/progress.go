package credit

import "math"

type (
	// CourseCredit is the slice of a course record the aggregation cares about.
	CourseCredit struct {
		Category string
		Credits  int
	}

	CategoryProgress struct {
		Code          string `json:"code"`
		Title         string `json:"title"`
		TotalRequired int    `json:"total"`
		Earned        int    `json:"earned"`
		Remaining     int    `json:"remaining"` // negative when over-credited
		Percent       int    `json:"percent"`
	}

	OverallProgress struct {
		TotalEarned     int `json:"total_earned"`
		TotalRemaining  int `json:"total_remaining"`
		PercentComplete int `json:"percent_complete"`
	}
)

// ComputeProgress turns a flat list of course credits into a per-category and
// an overall progress report. It is a pure function: output category order
// equals the input catalog order, and courses whose category matches no
// catalog entry contribute to no total.
func ComputeProgress(categories []Category, courses []CourseCredit) ([]CategoryProgress, OverallProgress) {
	earnedByCode := make(map[string]int, len(categories))
	for _, crs := range courses {
		earnedByCode[crs.Category] += crs.Credits
	}

	var totalEarned, totalRequired int
	progress := make([]CategoryProgress, 0, len(categories))
	for _, cat := range categories {
		earned := earnedByCode[cat.Code]
		progress = append(progress, CategoryProgress{
			Code:          cat.Code,
			Title:         cat.Title,
			TotalRequired: cat.TotalRequired,
			Earned:        earned,
			Remaining:     cat.TotalRequired - earned,
			Percent:       percent(earned, cat.TotalRequired),
		})
		totalEarned += earned
		totalRequired += cat.TotalRequired
	}

	overall := OverallProgress{
		TotalEarned:     totalEarned,
		TotalRemaining:  totalRequired - totalEarned,
		PercentComplete: percent(totalEarned, totalRequired),
	}
	return progress, overall
}

// percent rounds to the nearest integer, ties away from zero.
// A zero total yields 0 rather than dividing by zero.
func percent(earned, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(earned) / float64(total)))
}
