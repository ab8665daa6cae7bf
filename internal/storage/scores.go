package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one row of the high score table.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// SaveScore adds a score to a mode's table and returns its ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit scores of a mode, best first. Equal scores
// keep the order they were set in. A limit <= 0 means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	return collect(rows, func(r *sql.Rows) (ScoreEntry, error) {
		var e ScoreEntry
		var created any
		err := r.Scan(&e.ID, &e.GameID, &e.Score, &created)
		e.CreatedAt = parseTime(created)
		return e, err
	})
}

// HighScore returns the best score of a mode, or 0 when it has none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes the scores and rounds of a mode.
func (s *Store) ClearScores(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", gameID, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"scores", "rounds"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s of %s: %w", table, gameID, err)
		}
	}
	return tx.Commit()
}
