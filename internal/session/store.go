package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when the session id has no stored pointer.
var ErrNoSession = errors.New("no session")

// Store persists the session pointer (the logged-in user's record ID) keyed
// by an opaque session id. Injectable so pages never read ambient state.
type Store interface {
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, userID string) error
	Delete(ctx context.Context, sid string) error
}
