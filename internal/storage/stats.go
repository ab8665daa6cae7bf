package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// GameStats aggregates the score table and round history of one mode.
type GameStats struct {
	GameID      string
	GamesCount  int // Rows in the score table
	HighScore   int
	AvgScore    float64
	TotalScore  int64
	Wins        int
	Losses      int
	TotalCaught int64
	BestWinTime float64   // Seconds; 0 if the game was never won
	LastPlayed  time.Time // Latest score or round, whichever is newer
}

const (
	scoreTotals = `SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		FROM scores %s GROUP BY game_id`

	roundTotals = `SELECT game_id,
		SUM(outcome = 'won'),
		SUM(outcome = 'lost'),
		SUM(catches),
		COALESCE(MIN(CASE WHEN outcome = 'won' THEN duration_secs END), 0),
		MAX(created_at)
		FROM rounds %s GROUP BY game_id`
)

// GetGameStats returns the statistics of one mode. A mode never played
// gets zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats, err := s.totals("WHERE game_id = ?", gameID)
	if err != nil {
		return nil, err
	}
	if gs, ok := stats[gameID]; ok {
		return gs, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// GetAllGamesStats returns the statistics of every mode with at least one
// score or round, keyed by mode ID.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	return s.totals("")
}

// totals folds score and round aggregates, filtered by where, into one
// entry per mode.
func (s *Store) totals(where string, args ...any) (map[string]*GameStats, error) {
	stats := make(map[string]*GameStats)
	entry := func(id string) *GameStats {
		gs, ok := stats[id]
		if !ok {
			gs = &GameStats{GameID: id}
			stats[id] = gs
		}
		return gs
	}

	rows, err := s.db.Query(fmt.Sprintf(scoreTotals, where), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get score totals: %w", err)
	}
	_, err = collect(rows, func(r *sql.Rows) (struct{}, error) {
		var (
			id   string
			gs   GameStats
			last any
		)
		if err := r.Scan(&id, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last); err != nil {
			return struct{}{}, err
		}
		e := entry(id)
		e.GamesCount, e.HighScore, e.AvgScore, e.TotalScore = gs.GamesCount, gs.HighScore, gs.AvgScore, gs.TotalScore
		e.LastPlayed = parseTime(last)
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}

	rows, err = s.db.Query(fmt.Sprintf(roundTotals, where), args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round totals: %w", err)
	}
	_, err = collect(rows, func(r *sql.Rows) (struct{}, error) {
		var (
			id   string
			gs   GameStats
			last any
		)
		if err := r.Scan(&id, &gs.Wins, &gs.Losses, &gs.TotalCaught, &gs.BestWinTime, &last); err != nil {
			return struct{}{}, err
		}
		e := entry(id)
		e.Wins, e.Losses, e.TotalCaught, e.BestWinTime = gs.Wins, gs.Losses, gs.TotalCaught, gs.BestWinTime
		if played := parseTime(last); played.After(e.LastPlayed) {
			e.LastPlayed = played
		}
		return struct{}{}, nil
	})
	if err != nil {
		return nil, err
	}
	return stats, nil
}
