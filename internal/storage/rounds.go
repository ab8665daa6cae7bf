package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeAbandoned Outcome = "abandoned" // Player left before the round ended
)

// Round is the record of one finished or abandoned round.
type Round struct {
	ID        int64
	GameID    string
	Player    string // SSH user name, or "local"
	Outcome   Outcome
	Score     int
	Catches   int
	Timeouts  int
	Duration  float64 // Simulated seconds
	CreatedAt time.Time
}

const roundColumns = "id, game_id, player, outcome, score, catches, timeouts, duration_secs, created_at"

// SaveRound records a round and returns its ID. An empty player is stored as "local".
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Player == "" {
		r.Player = "local"
	}

	res, err := s.db.Exec(
		`INSERT INTO rounds (game_id, player, outcome, score, catches, timeouts, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, string(r.Outcome), r.Score, r.Catches, r.Timeouts, r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}
	return res.LastInsertId()
}

// RecentRounds returns up to limit rounds of a mode, newest first.
// A limit <= 0 means 20.
func (s *Store) RecentRounds(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.rounds(
		"SELECT "+roundColumns+" FROM rounds WHERE game_id = ? ORDER BY id DESC LIMIT ?",
		gameID, limit,
	)
}

// FastestWins returns up to limit won rounds of a mode, quickest first.
// A limit <= 0 means 10.
func (s *Store) FastestWins(gameID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.rounds(
		"SELECT "+roundColumns+" FROM rounds WHERE game_id = ? AND outcome = ? ORDER BY duration_secs ASC, id ASC LIMIT ?",
		gameID, string(OutcomeWon), limit,
	)
}

func (s *Store) rounds(query string, args ...any) ([]Round, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}

	return collect(rows, func(rs *sql.Rows) (Round, error) {
		var (
			r       Round
			outcome string
			created any
		)
		err := rs.Scan(&r.ID, &r.GameID, &r.Player, &outcome, &r.Score, &r.Catches, &r.Timeouts, &r.Duration, &created)
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(created)
		return r, err
	})
}
