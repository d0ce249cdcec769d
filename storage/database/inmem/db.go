package inmemdb

import (
	"sync"

	"github.com/trackmycredits/backend/core/contact"
	"github.com/trackmycredits/backend/core/course"
	"github.com/trackmycredits/backend/core/user"
)

// DB is an in-memory store for tests and local hacking.
type DB struct {
	user    *userTable
	course  *courseTable
	contact *contactTable
}

type userTable struct {
	mutex sync.RWMutex
	table map[string]*user.User
}

type courseTable struct {
	mutex   sync.RWMutex
	table   map[int64]*course.Course
	pkCount int64
}

type contactTable struct {
	mutex   sync.RWMutex
	table   map[int64]*contact.Message
	pkCount int64
}

func NewDB() *DB {
	return &DB{
		user:    &userTable{table: make(map[string]*user.User)},
		course:  &courseTable{table: make(map[int64]*course.Course)},
		contact: &contactTable{table: make(map[int64]*contact.Message)},
	}
}
