// Package session holds the per-browser login state shared by the views.
//
// A State is populated at login, read on every request and removed at
// logout. Views receive it by value at construction and never write to it.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session id.
const CookieName = "taskboard_session"

type State struct {
	Token    string `json:"token"`
	LoggedIn bool   `json:"loggedIn"`
}

// Store persists session state by id. Get returns errors.ErrSessionNotFound
// for unknown or expired ids.
type Store interface {
	Get(ctx context.Context, id string) (State, error)
	Save(ctx context.Context, id string, state State, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}
