// Package store composes the session, story and activity slices into one
// addressable state tree. The activity slice is the only slice transparently
// round-tripped through the persistence bridge; the other slices' durability
// is the responsibility of whoever owns them, under separate storage keys.
package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/activity"
	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/core/user"
)

// ActivityStateKey is the storage key for activity slice snapshots.
const ActivityStateKey = "eduspark_activity_state"

// Storage is the best-effort persistence bridge the store reads and writes
// the activity slice through. Err reports a poisoned backend so the store
// can stop accepting writes it would silently lose.
type Storage interface {
	Load(key string, dst interface{}) bool
	Save(key string, v interface{})
	Err() error
}

// Action is any slice action; the concrete type decides which reducer runs.
type Action interface{}

// Store holds the composed state tree. All dispatches are serialized: the
// persistence write happens strictly after the reducer has produced the new
// state and strictly before Dispatch returns.
type Store struct {
	mu      sync.Mutex
	userSt  user.State
	storySt story.State
	activSt activity.State
	storage Storage
	log     core.Logger
}

// New builds a store, rehydrating the activity slice from storage when a
// snapshot exists and falling back to the slice's initial state otherwise.
func New(storage Storage, log core.Logger) *Store {
	s := &Store{
		userSt:  user.InitialState(),
		storySt: story.InitialState(),
		activSt: activity.InitialState(),
		storage: storage,
		log:     log,
	}
	var persisted activity.State
	if storage.Load(ActivityStateKey, &persisted) {
		s.activSt = persisted
	}
	return s
}

// Dispatch applies the action's reducer and, for activity actions, persists
// the resulting activity slice before returning. A persistently failing
// backend surfaces as a shutdown error; single write failures stay silent.
func (s *Store) Dispatch(action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := action.(type) {
	case user.Action:
		s.userSt = user.Reduce(s.userSt, a)
	case story.Action:
		s.storySt = story.Reduce(s.storySt, a)
	case activity.Action:
		s.activSt = activity.Reduce(s.activSt, a)
		s.storage.Save(ActivityStateKey, s.activSt)
		return s.storage.Err()
	default:
		return errors.Errorf("store: unknown action type %T", action)
	}
	return nil
}

func (s *Store) UserState() user.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userSt
}

func (s *Store) StoryState() story.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storySt
}

func (s *Store) ActivityState() activity.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activSt
}
