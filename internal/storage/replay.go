package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("storage: not found")

// Replay is a recorded session: everything needed to run it again and check
// that it ends on the same frame.
type Replay struct {
	ID         int64
	GameID     string // game started directly, or "menu"
	Seed       uint64
	TickRate   int
	Difficulty string
	Config     string // YAML document the session ran with
	Ticks      int
	Score      int
	FrameHash  uint64
	Inputs     []core.RawInput
	CreatedAt  time.Time
}

// ReplaySummary is a replay without its input stream, for listings.
type ReplaySummary struct {
	ID         int64
	GameID     string
	Difficulty string
	Ticks      int
	Score      int
	CreatedAt  time.Time
}

// SaveReplay stores a recorded session and returns its ID.
func (s *Store) SaveReplay(r Replay) (int64, error) {
	if r.Ticks != len(r.Inputs) {
		return 0, fmt.Errorf("storage: replay has %d inputs for %d ticks", len(r.Inputs), r.Ticks)
	}
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}

	res, err := s.db.Exec(
		`INSERT INTO replays
		 (game_id, seed, tick_rate, difficulty, config, ticks, score, frame_hash, inputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID,
		int64(r.Seed),
		r.TickRate,
		r.Difficulty,
		r.Config,
		r.Ticks,
		r.Score,
		int64(r.FrameHash),
		EncodeInputs(r.Inputs),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Replay loads a replay with its input stream.
func (s *Store) Replay(id int64) (*Replay, error) {
	var r Replay
	var seed, hash int64
	var inputs []byte
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, seed, tick_rate, difficulty, config, ticks, score, frame_hash, inputs, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &seed, &r.TickRate, &r.Difficulty, &r.Config, &r.Ticks, &r.Score, &hash, &inputs, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: replay %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	r.Seed = uint64(seed)
	r.FrameHash = uint64(hash)
	r.CreatedAt = parseTime(createdAt)
	if r.Inputs, err = DecodeInputs(inputs); err != nil {
		return nil, fmt.Errorf("storage: replay %d: %w", id, err)
	}

	return &r, nil
}

// Replays lists the most recent replays, newest first. An empty gameID lists
// every game.
func (s *Store) Replays(gameID string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, difficulty, ticks, score, created_at
		 FROM replays
		 WHERE ? = '' OR game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var results []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Difficulty, &r.Ticks, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// DeleteReplay removes a replay.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: replay %d: %w", id, ErrNotFound)
	}
	return nil
}
