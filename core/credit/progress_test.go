package credit

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	cats := Catalog()
	assert.Len(t, cats, 8)

	wantOrder := []string{"ec", "ee", "fc", "ho", "mi", "pc", "pe", "ue"}
	for i, cat := range cats {
		assert.Equal(t, wantOrder[i], cat.Code)
		assert.Greater(t, cat.TotalRequired, 0)
	}

	fc, ok := CategoryByCode("fc")
	assert.True(t, ok)
	assert.Equal(t, "Foundation Core", fc.Title)
	assert.Equal(t, 44, fc.TotalRequired)

	_, ok = CategoryByCode("xx")
	assert.False(t, ok)
	assert.True(t, KnownCategory("pc"))
	assert.False(t, KnownCategory(""))
}

func TestComputeProgress(t *testing.T) {
	categories := []Category{
		{Code: "fc", Title: "Foundation Core", TotalRequired: 44},
		{Code: "pc", Title: "Program Core", TotalRequired: 52},
	}
	courses := []CourseCredit{
		{Category: "fc", Credits: 4},
		{Category: "fc", Credits: 4},
		{Category: "pc", Credits: 6},
	}

	progress, overall := ComputeProgress(categories, courses)

	assert.Len(t, progress, 2)
	assert.Equal(t, CategoryProgress{
		Code: "fc", Title: "Foundation Core", TotalRequired: 44,
		Earned: 8, Remaining: 36, Percent: 18,
	}, progress[0])
	assert.Equal(t, CategoryProgress{
		Code: "pc", Title: "Program Core", TotalRequired: 52,
		Earned: 6, Remaining: 46, Percent: 12,
	}, progress[1])

	// 14/96 ≈ 14.6% -> 15
	assert.Equal(t, OverallProgress{TotalEarned: 14, TotalRemaining: 82, PercentComplete: 15}, overall)
}

func TestComputeProgress_noCourses(t *testing.T) {
	progress, overall := ComputeProgress(Catalog(), nil)

	assert.Len(t, progress, len(Catalog()))
	for i, p := range progress {
		assert.Equal(t, Catalog()[i].Code, p.Code)
		assert.Equal(t, 0, p.Earned)
		assert.Equal(t, p.TotalRequired, p.Remaining)
		assert.Equal(t, 0, p.Percent)
	}
	assert.Equal(t, OverallProgress{TotalEarned: 0, TotalRemaining: 200, PercentComplete: 0}, overall)
}

func TestComputeProgress_unknownCategoryExcluded(t *testing.T) {
	courses := []CourseCredit{
		{Category: "fc", Credits: 8},
		{Category: "zz", Credits: 100}, // no catalog entry; never surfaces
	}

	progress, overall := ComputeProgress(Catalog(), courses)

	var earnedSum int
	for _, p := range progress {
		earnedSum += p.Earned
	}
	assert.Equal(t, 8, earnedSum)
	assert.Equal(t, 8, overall.TotalEarned)
}

func TestComputeProgress_overCredited(t *testing.T) {
	categories := []Category{{Code: "ee", TotalRequired: 8}}
	courses := []CourseCredit{{Category: "ee", Credits: 12}}

	progress, _ := ComputeProgress(categories, courses)

	// no clamping
	assert.Equal(t, -4, progress[0].Remaining)
	assert.Equal(t, 150, progress[0].Percent)
}

func TestComputeProgress_zeroTotalRequired(t *testing.T) {
	categories := []Category{{Code: "xx", TotalRequired: 0}}
	courses := []CourseCredit{{Category: "xx", Credits: 5}}

	progress, _ := ComputeProgress(categories, courses)

	assert.Equal(t, 0, progress[0].Percent)
}

func TestComputeProgress_earnedSumsMatchOverall(t *testing.T) {
	courses := []CourseCredit{
		{Category: "ec", Credits: 3},
		{Category: "fc", Credits: 10},
		{Category: "fc", Credits: 7},
		{Category: "ue", Credits: 2},
		{Category: "pc", Credits: 13},
	}

	progress, overall := ComputeProgress(Catalog(), courses)

	var earnedSum int
	for _, p := range progress {
		earnedSum += p.Earned
	}
	assert.Equal(t, overall.TotalEarned, earnedSum)
}

func TestComputeProgress_orderIndependentAndIdempotent(t *testing.T) {
	courses := []CourseCredit{
		{Category: "fc", Credits: 4},
		{Category: "pc", Credits: 6},
		{Category: "fc", Credits: 4},
		{Category: "mi", Credits: 5},
		{Category: "ho", Credits: 2},
	}

	wantProgress, wantOverall := ComputeProgress(Catalog(), courses)

	for i := 0; i < 10; i++ {
		shuffled := make([]CourseCredit, len(courses))
		copy(shuffled, courses)
		rand.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		progress, overall := ComputeProgress(Catalog(), shuffled)
		assert.Equal(t, wantProgress, progress)
		assert.Equal(t, wantOverall, overall)
	}

	// same inputs, same outputs
	again, overallAgain := ComputeProgress(Catalog(), courses)
	assert.Equal(t, wantProgress, again)
	assert.Equal(t, wantOverall, overallAgain)
}

func TestComputeProgress_roundsTiesAwayFromZero(t *testing.T) {
	categories := []Category{{Code: "fc", TotalRequired: 8}}
	courses := []CourseCredit{{Category: "fc", Credits: 1}} // 12.5% -> 13

	progress, _ := ComputeProgress(categories, courses)

	assert.Equal(t, 13, progress[0].Percent)
}
