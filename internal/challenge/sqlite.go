package challenge

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"flexicoach/fincoach/internal/apperror"
	"flexicoach/fincoach/internal/models"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS user_challenges (
	user_id       TEXT NOT NULL,
	challenge_id  TEXT NOT NULL,
	status        TEXT NOT NULL,
	current_value REAL NOT NULL DEFAULT 0,
	target        REAL NOT NULL,
	started_at    TEXT NOT NULL DEFAULT '',
	completed_at  TEXT NOT NULL DEFAULT '',
	title         TEXT NOT NULL DEFAULT '',
	description   TEXT NOT NULL DEFAULT '',
	difficulty    TEXT NOT NULL DEFAULT '',
	reward        TEXT NOT NULL DEFAULT '',
	points        INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (user_id, challenge_id)
);
`

// SQLiteStore persists challenge state in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath and
// ensures the schema exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Start(ctx context.Context, userID string, data models.Challenge) (UserChallenge, error) {
	existing, err := s.get(ctx, userID, data.ID)
	if err == nil {
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
	} else if !errors.Is(err, sql.ErrNoRows) {
		return UserChallenge{}, &apperror.StoreError{User: userID, Challenge: data.ID, Err: err}
	}

	uc := newUserChallenge(userID, data)
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO user_challenges
			(user_id, challenge_id, status, current_value, target,
			 started_at, completed_at, title, description, difficulty, reward, points)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uc.UserID, uc.ChallengeID, uc.Status, uc.Current, uc.Target,
		uc.StartedAt, uc.CompletedAt, uc.Title, uc.Description, uc.Difficulty, uc.Reward, uc.Points)
	if err != nil {
		return UserChallenge{}, &apperror.StoreError{User: userID, Challenge: data.ID, Err: err}
	}
	return uc, nil
}

func (s *SQLiteStore) Progress(ctx context.Context, userID, challengeID string, value float64) (UserChallenge, error) {
	uc, err := s.get(ctx, userID, challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UserChallenge{}, &apperror.StoreError{
				User: userID, Challenge: challengeID, Err: apperror.ErrChallengeNotFound,
			}
		}
		return UserChallenge{}, &apperror.StoreError{User: userID, Challenge: challengeID, Err: err}
	}
	if uc.Status != StatusActive {
		return UserChallenge{}, &apperror.StoreError{
			User: userID, Challenge: challengeID, Err: apperror.ErrChallengeNotActive,
		}
	}

	applyProgress(&uc, value)
	_, err = s.db.ExecContext(ctx, `
		UPDATE user_challenges
		SET status = ?, current_value = ?, completed_at = ?
		WHERE user_id = ? AND challenge_id = ?`,
		uc.Status, uc.Current, uc.CompletedAt, userID, challengeID)
	if err != nil {
		return UserChallenge{}, &apperror.StoreError{User: userID, Challenge: challengeID, Err: err}
	}
	return uc, nil
}

func (s *SQLiteStore) List(ctx context.Context, userID string) (List, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT user_id, challenge_id, status, current_value, target,
		       started_at, completed_at, title, description, difficulty, reward, points
		FROM user_challenges
		WHERE user_id = ?
		ORDER BY challenge_id`, userID)
	if err != nil {
		return List{}, &apperror.StoreError{User: userID, Err: err}
	}
	defer rows.Close()

	result := List{Active: []UserChallenge{}, Completed: []UserChallenge{}}
	for rows.Next() {
		var uc UserChallenge
		if err := rows.Scan(&uc.UserID, &uc.ChallengeID, &uc.Status, &uc.Current, &uc.Target,
			&uc.StartedAt, &uc.CompletedAt, &uc.Title, &uc.Description,
			&uc.Difficulty, &uc.Reward, &uc.Points); err != nil {
			return List{}, &apperror.StoreError{User: userID, Err: err}
		}
		switch uc.Status {
		case StatusActive:
			result.Active = append(result.Active, uc)
		case StatusCompleted:
			result.Completed = append(result.Completed, uc)
		}
	}
	if err := rows.Err(); err != nil {
		return List{}, &apperror.StoreError{User: userID, Err: err}
	}
	return result, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, userID, challengeID string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM user_challenges WHERE user_id = ? AND challenge_id = ?`,
		userID, challengeID)
	if err != nil {
		return false, &apperror.StoreError{User: userID, Challenge: challengeID, Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, &apperror.StoreError{User: userID, Challenge: challengeID, Err: err}
	}
	return affected > 0, nil
}

func (s *SQLiteStore) get(ctx context.Context, userID, challengeID string) (UserChallenge, error) {
	var uc UserChallenge
	err := s.db.QueryRowContext(ctx, `
		SELECT user_id, challenge_id, status, current_value, target,
		       started_at, completed_at, title, description, difficulty, reward, points
		FROM user_challenges
		WHERE user_id = ? AND challenge_id = ?`, userID, challengeID).
		Scan(&uc.UserID, &uc.ChallengeID, &uc.Status, &uc.Current, &uc.Target,
			&uc.StartedAt, &uc.CompletedAt, &uc.Title, &uc.Description,
			&uc.Difficulty, &uc.Reward, &uc.Points)
	return uc, err
}
