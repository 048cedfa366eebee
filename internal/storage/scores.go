package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry represents a single score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	UserEmail string
	Username  string // Empty if the account no longer exists
	Score     int
	CreatedAt time.Time
}

// SaveScore records a finished run for the given game and user.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID, userEmail string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, user_email, score) VALUES (?, ?, ?)",
		gameID, userEmail, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game with player names.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT s.id, s.game_id, s.user_email, COALESCE(u.username, ''), s.score, s.created_at
		 FROM scores s
		 LEFT JOIN users u ON u.email = s.user_email
		 WHERE s.game_id = ?
		 ORDER BY s.score DESC, s.id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.UserEmail, &e.Username, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the user's highest score in the given game.
// Returns 0 if the user has no scores there.
func (s *Store) BestScore(gameID, userEmail string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ? AND user_email = ?",
		gameID, userEmail,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// UserBests returns the user's best score per game, keyed by game ID.
// Games the user never played are absent.
func (s *Store) UserBests(userEmail string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT game_id, MAX(score)
		 FROM scores
		 WHERE user_email = ?
		 GROUP BY game_id`,
		userEmail,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user bests: %w", err)
	}
	defer rows.Close()

	bests := make(map[string]int)
	for rows.Next() {
		var gameID string
		var score int
		if err := rows.Scan(&gameID, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		bests[gameID] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return bests, nil
}

// HighScore returns the highest score of any player for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	// Get count, players, high, avg, total
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT user_email), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.Players, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	// Get last played
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}
