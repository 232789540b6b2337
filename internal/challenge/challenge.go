// Package challenge tracks per-user challenge state. Two Store
// implementations exist: an in-memory map for single-process use and a
// SQLite-backed store for persistence across runs.
package challenge

import (
	"context"
	"time"

	"flexicoach/fincoach/internal/models"
)

// Challenge status values.
const (
	StatusNotStarted = "not_started"
	StatusActive     = "active"
	StatusCompleted  = "completed"
)

// UserChallenge is one user's state for one challenge.
type UserChallenge struct {
	UserID      string  `json:"userId"`
	ChallengeID string  `json:"challengeId"`
	Status      string  `json:"status"`
	Current     float64 `json:"current"`
	Target      float64 `json:"target"`
	StartedAt   string  `json:"startedAt,omitempty"`
	CompletedAt string  `json:"completedAt,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty"`
	Reward      string  `json:"reward"`
	Points      int     `json:"points"`
}

// List groups a user's challenges by status.
type List struct {
	Active    []UserChallenge `json:"activeChallenges"`
	Completed []UserChallenge `json:"completedChallenges"`
}

// Store persists per-user challenge state. Start fails when the pair is
// already active or completed; Progress only applies to active challenges
// and auto-completes when the target is reached; Delete reports whether the
// pair existed.
type Store interface {
	Start(ctx context.Context, userID string, data models.Challenge) (UserChallenge, error)
	Progress(ctx context.Context, userID, challengeID string, value float64) (UserChallenge, error)
	List(ctx context.Context, userID string) (List, error)
	Delete(ctx context.Context, userID, challengeID string) (bool, error)
	Close() error
}

func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// newUserChallenge builds the active record for a freshly started challenge.
func newUserChallenge(userID string, data models.Challenge) UserChallenge {
	return UserChallenge{
		UserID:      userID,
		ChallengeID: data.ID,
		Status:      StatusActive,
		Current:     0,
		Target:      data.Target,
		StartedAt:   nowISO(),
		Title:       data.Title,
		Description: data.Description,
		Difficulty:  data.Difficulty,
		Reward:      data.Reward,
		Points:      data.Points,
	}
}

// applyProgress mutates the record with a new progress value, completing it
// when the target is reached.
func applyProgress(uc *UserChallenge, value float64) {
	uc.Current = value
	if value >= uc.Target {
		uc.Status = StatusCompleted
		uc.CompletedAt = nowISO()
	}
}
