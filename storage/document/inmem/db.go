// Package inmemdb is an in-memory stand-in for the document database,
// used in DEV and in tests.
package inmemdb

import (
	"sync"

	"github.com/dikshant1602/wandwrite/core/request"
	"github.com/dikshant1602/wandwrite/core/user"
)

type (
	DB struct {
		user    *userTable
		request *requestTable
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	requestTable struct {
		sync.RWMutex
		table map[string]*request.Request
		order []string // insertion order of ids
	}
)

func Open() (*DB, error) {
	db := &DB{
		user:    &userTable{table: make(map[string]*user.User)},
		request: &requestTable{table: make(map[string]*request.Request)},
	}
	return db, nil
}
