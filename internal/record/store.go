// Package record persists finished and in-flight match data to SQLite
// for later analysis. It listens on the event bus rather than being
// called by the engine directly, so simulations run identically with
// recording on or off.
package record

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lanebound/lanebound/internal/game/core"
	"github.com/lanebound/lanebound/internal/record/migrations"
)

// Store persists match records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// Open opens a SQLite match store and applies embedded migrations.
// The special path ":memory:" opens a throwaway in-memory database.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// modernc.org/sqlite serializes at the driver level; a single
	// connection avoids table-lock errors from concurrent recorders.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InsertMatch inserts a match header row and returns its row id.
func (s *Store) InsertMatch(matchID string, seed int64, agentA, agentB string, victoryScore, maxTurns int, startedAt time.Time) (int64, error) {
	res, err := s.sqlDB.Exec(
		`INSERT INTO matches (match_id, seed, agent_a, agent_b, victory_score, max_turns, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		matchID, seed, agentA, agentB, victoryScore, maxTurns, toMillis(startedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert match: %w", err)
	}
	return id, nil
}

// FinishMatch fills in the outcome columns of a match row.
func (s *Store) FinishMatch(matchRef int64, winner string, turns, unitsPlayed, spellsCast, pointsA, pointsB int, endedAt time.Time) error {
	_, err := s.sqlDB.Exec(
		`UPDATE matches
		    SET winner = ?, turns = ?, units_played = ?, spells_cast = ?,
		        points_a = ?, points_b = ?, ended_at = ?
		  WHERE id = ?`,
		winner, turns, unitsPlayed, spellsCast, pointsA, pointsB, toMillis(endedAt), matchRef,
	)
	if err != nil {
		return fmt.Errorf("finish match: %w", err)
	}
	return nil
}

// InsertDeck stores one player's starting deck as a card-name list plus
// a hash usable for grouping matches by deck.
func (s *Store) InsertDeck(matchRef int64, player core.Side, deck []*core.Card) error {
	names := make([]string, len(deck))
	for i, c := range deck {
		names[i] = c.Name
	}
	cardsJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	_, err = s.sqlDB.Exec(
		`INSERT INTO decks (match_ref, player, deck_hash, cards_json) VALUES (?, ?, ?, ?)`,
		matchRef, string(player), deckHash(names), string(cardsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert deck: %w", err)
	}
	return nil
}

// InsertDraw stores one card draw.
func (s *Store) InsertDraw(matchRef int64, player core.Side, turn, drawIndex int, cardName string) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO draws (match_ref, player, turn, draw_index, card_name) VALUES (?, ?, ?, ?, ?)`,
		matchRef, string(player), turn, drawIndex, cardName,
	)
	if err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}
	return nil
}

// InsertPlay stores one resolved card play.
func (s *Store) InsertPlay(matchRef int64, player core.Side, turn int, cardName, action string, lane int, result string) error {
	_, err := s.sqlDB.Exec(
		`INSERT INTO plays (match_ref, player, turn, card_name, action, lane, result) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		matchRef, string(player), turn, cardName, action, lane, result,
	)
	if err != nil {
		return fmt.Errorf("insert play: %w", err)
	}
	return nil
}

// InsertBoard stores one lane's end-of-turn snapshot.
func (s *Store) InsertBoard(matchRef int64, turn, lane int, controller core.Side, contested bool, unitsA, unitsB any, pointsA, pointsB int) error {
	aJSON, err := json.Marshal(unitsA)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	bJSON, err := json.Marshal(unitsB)
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	contestedInt := 0
	if contested {
		contestedInt = 1
	}
	_, err = s.sqlDB.Exec(
		`INSERT INTO boards (match_ref, turn, lane, controller, contested, units_a_json, units_b_json, points_a, points_b)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		matchRef, turn, lane, string(controller), contestedInt, string(aJSON), string(bJSON), pointsA, pointsB,
	)
	if err != nil {
		return fmt.Errorf("insert board: %w", err)
	}
	return nil
}

// InsertHand stores a player's end-of-turn hand.
func (s *Store) InsertHand(matchRef int64, player core.Side, turn int, cards []*core.Card) error {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	cardsJSON, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode hand: %w", err)
	}
	_, err = s.sqlDB.Exec(
		`INSERT INTO hands (match_ref, player, turn, cards_json) VALUES (?, ?, ?, ?)`,
		matchRef, string(player), turn, string(cardsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert hand: %w", err)
	}
	return nil
}

// deckHash derives a stable identifier from the deck's card names in
// their shuffled order. Identical lists hash identically, so repeated
// seeds can be spotted in the data.
func deckHash(names []string) string {
	h := sha1.New()
	for _, n := range names {
		h.Write([]byte(n))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
