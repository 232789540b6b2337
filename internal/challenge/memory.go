package challenge

import (
	"context"
	"sort"
	"sync"

	"flexicoach/fincoach/internal/apperror"
	"flexicoach/fincoach/internal/models"
)

// MemoryStore keeps challenge state in process memory. Safe for concurrent
// use.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[string]UserChallenge
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]map[string]UserChallenge)}
}

func (s *MemoryStore) Start(_ context.Context, userID string, data models.Challenge) (UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.users[userID][data.ID]; ok {
		switch existing.Status {
		case StatusActive:
			return UserChallenge{}, &apperror.StoreError{
				User: userID, Challenge: data.ID, Err: apperror.ErrChallengeActive,
			}
		case StatusCompleted:
			return UserChallenge{}, &apperror.StoreError{
				User: userID, Challenge: data.ID, Err: apperror.ErrChallengeCompleted,
			}
		}
	}

	if s.users[userID] == nil {
		s.users[userID] = make(map[string]UserChallenge)
	}
	uc := newUserChallenge(userID, data)
	s.users[userID][data.ID] = uc
	return uc, nil
}

func (s *MemoryStore) Progress(_ context.Context, userID, challengeID string, value float64) (UserChallenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uc, ok := s.users[userID][challengeID]
	if !ok {
		return UserChallenge{}, &apperror.StoreError{
			User: userID, Challenge: challengeID, Err: apperror.ErrChallengeNotFound,
		}
	}
	if uc.Status != StatusActive {
		return UserChallenge{}, &apperror.StoreError{
			User: userID, Challenge: challengeID, Err: apperror.ErrChallengeNotActive,
		}
	}

	applyProgress(&uc, value)
	s.users[userID][challengeID] = uc
	return uc, nil
}

func (s *MemoryStore) List(_ context.Context, userID string) (List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := List{Active: []UserChallenge{}, Completed: []UserChallenge{}}
	for _, uc := range s.users[userID] {
		switch uc.Status {
		case StatusActive:
			result.Active = append(result.Active, uc)
		case StatusCompleted:
			result.Completed = append(result.Completed, uc)
		}
	}
	// map iteration order is random, sort for stable output
	sortByID(result.Active)
	sortByID(result.Completed)
	return result, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, challengeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[userID][challengeID]; !ok {
		return false, nil
	}
	delete(s.users[userID], challengeID)
	return true, nil
}

func (s *MemoryStore) Close() error {
	return nil
}

func sortByID(list []UserChallenge) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].ChallengeID < list[j].ChallengeID
	})
}
