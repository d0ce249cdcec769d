package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trackmycredits/backend/core/course"
)

type courseRow struct {
	ID        int64       `db:"id"`
	UserID    string      `db:"user_id"`
	Category  string      `db:"category"`
	Name      string      `db:"name"`
	Credits   int         `db:"credits"`
	Grade     null.String `db:"grade"`
	CreatedAt time.Time   `db:"created_at"`
}

type courseRepository struct {
	db *sqlx.DB
}

var _ course.Repository = (*courseRepository)(nil) // interface compliance check

func NewCourseRepository(db *sql.DB) *courseRepository {
	return &courseRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo courseRepository) unrow(row courseRow) course.Course {
	return course.Course{
		ID:        row.ID,
		UserID:    row.UserID,
		Category:  row.Category,
		Name:      row.Name,
		Credits:   row.Credits,
		Grade:     row.Grade.String,
		CreatedAt: row.CreatedAt,
	}
}

func (repo courseRepository) CreateCourse(ctx context.Context, crs course.Course) (course.Course, error) {
	row := courseRow{
		UserID:    crs.UserID,
		Category:  crs.Category,
		Name:      crs.Name,
		Credits:   crs.Credits,
		Grade:     null.NewString(crs.Grade, crs.Grade != ""),
		CreatedAt: crs.CreatedAt.UTC(),
	}
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO course (user_id, category, name, credits, grade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		row.UserID, row.Category, row.Name, row.Credits, row.Grade, row.CreatedAt,
	).Scan(&row.ID)
	if err != nil {
		return course.Course{}, errors.Wrap(err, "inserting course")
	}
	return repo.unrow(row), nil
}

func (repo courseRepository) QueryCoursesByUser(ctx context.Context, userID string) ([]course.Course, error) {
	var rows []courseRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM course WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying courses")
	}
	courses := make([]course.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, repo.unrow(row))
	}
	return courses, nil
}

// DeleteCourse removes the first (lowest ID) matching course only; a user may
// have identically named courses in the same category.
func (repo courseRepository) DeleteCourse(ctx context.Context, userID, category, name string) error {
	res, err := repo.db.ExecContext(ctx, `
		DELETE FROM course
		WHERE id = (SELECT id
		            FROM course
		            WHERE user_id = $1 AND category = $2 AND name = $3
		            ORDER BY id
		            LIMIT 1)`,
		userID, category, name)
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "deleting course")
	}
	if n == 0 {
		return course.ErrNotFound
	}
	return nil
}
