package inmemdb

import (
	"context"
	"sort"

	"github.com/trackmycredits/backend/core/course"
)

type courseRepository struct {
	db *courseTable
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *DB) *courseRepository {
	return &courseRepository{db: db.course}
}

func (repo *courseRepository) CreateCourse(_ context.Context, crs course.Course) (course.Course, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	crs.ID = repo.db.pkCount
	repo.db.table[crs.ID] = &crs
	return crs, nil
}

func (repo *courseRepository) QueryCoursesByUser(_ context.Context, userID string) ([]course.Course, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	courses := make([]course.Course, 0)
	for _, crs := range repo.db.table {
		if crs.UserID == userID {
			courses = append(courses, *crs)
		}
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (repo *courseRepository) DeleteCourse(_ context.Context, userID, category, name string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	// first match by ascending ID
	var matchID int64 = -1
	for id, crs := range repo.db.table {
		if crs.UserID == userID && crs.Category == category && crs.Name == name {
			if matchID == -1 || id < matchID {
				matchID = id
			}
		}
	}
	if matchID == -1 {
		return course.ErrNotFound
	}
	delete(repo.db.table, matchID)
	return nil
}
