package course

import (
	"context"
	"errors"
	"time"

	"github.com/trackmycredits/backend/core/credit"
)

var ErrNotFound = errors.New("course not found")

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		QueryCoursesByUser(ctx context.Context, userID string) ([]Course, error)
		// DeleteCourse removes the user's first course (lowest ID) matching
		// category and name exactly; ErrNotFound when none matches.
		DeleteCourse(ctx context.Context, userID, category, name string) error
	}

	Service struct {
		repo Repository
	}

	// CategoryReport is a category's progress along with the courses behind it.
	CategoryReport struct {
		credit.CategoryProgress
		Courses []Course `json:"courses"`
	}

	// Report is a user's full graduation progress, recomputed from live data.
	Report struct {
		Categories      []CategoryReport `json:"categories"`
		TotalEarned     int              `json:"total_credits_earned"`
		TotalRemaining  int              `json:"total_credits_remaining"`
		PercentComplete int              `json:"percentage_complete"`
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add records a completed course for the user. nc must have been validated.
func (svc *Service) Add(ctx context.Context, userID string, nc NewCourse) (Course, error) {
	crs := Course{
		UserID:    userID,
		Category:  nc.Category,
		Name:      nc.Name,
		Credits:   nc.Credits,
		Grade:     nc.Grade,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateCourse(ctx, crs)
}

func (svc *Service) ListByUser(ctx context.Context, userID string) ([]Course, error) {
	return svc.repo.QueryCoursesByUser(ctx, userID)
}

func (svc *Service) Delete(ctx context.Context, userID, category, name string) error {
	return svc.repo.DeleteCourse(ctx, userID, category, name)
}

// Progress fetches the user's live courses and aggregates them against the
// credit catalog. Nothing is cached; every call recomputes from the store.
func (svc *Service) Progress(ctx context.Context, userID string) (Report, error) {
	courses, err := svc.repo.QueryCoursesByUser(ctx, userID)
	if err != nil {
		return Report{}, err
	}

	courseCredits := make([]credit.CourseCredit, 0, len(courses))
	byCategory := make(map[string][]Course, len(courses))
	for _, crs := range courses {
		courseCredits = append(courseCredits, credit.CourseCredit{Category: crs.Category, Credits: crs.Credits})
		byCategory[crs.Category] = append(byCategory[crs.Category], crs)
	}

	progress, overall := credit.ComputeProgress(credit.Catalog(), courseCredits)

	report := Report{
		Categories:      make([]CategoryReport, 0, len(progress)),
		TotalEarned:     overall.TotalEarned,
		TotalRemaining:  overall.TotalRemaining,
		PercentComplete: overall.PercentComplete,
	}
	for _, p := range progress {
		courses := byCategory[p.Code]
		if courses == nil {
			courses = []Course{}
		}
		report.Categories = append(report.Categories, CategoryReport{CategoryProgress: p, Courses: courses})
	}
	return report, nil
}
