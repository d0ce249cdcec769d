package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/trackmycredits/backend/core/course"
	"github.com/trackmycredits/backend/core/user"
)

func CreateUser(
	t *testing.T,
	repo user.Repository,
	email, pwd string,
	isActive bool,
	createdAt ...time.Time,
) user.User {
	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	usr := user.User{
		Email:     email,
		IsActive:  isActive,
		CreatedAt: tstamp,
		UpdatedAt: tstamp,
	}
	if pwd != "" {
		if err := usr.SetPassword(pwd); err != nil {
			t.Fatalf("createUser() failed: %v", err)
		}
	}
	usr, err := repo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser() failed: %v", err)
	}
	return usr
}

func CreateCourse(
	t *testing.T,
	repo course.Repository,
	userID, category, name string,
	credits int,
	grade string,
) course.Course {
	crs := course.Course{
		UserID:    userID,
		Category:  category,
		Name:      name,
		Credits:   credits,
		Grade:     grade,
		CreatedAt: time.Now().UTC(),
	}
	crs, err := repo.CreateCourse(context.Background(), crs)
	if err != nil {
		t.Fatalf("createCourse() failed: %v", err)
	}
	return crs
}
