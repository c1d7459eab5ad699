package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrSaveNotFound is returned when a save slot does not exist.
var ErrSaveNotFound = errors.New("persistence: save not found")

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	game_id    TEXT NOT NULL,
	name       TEXT NOT NULL,
	era        TEXT NOT NULL,
	tick_count INTEGER NOT NULL,
	saved_at   TEXT NOT NULL,
	body       BLOB NOT NULL
);

CREATE TABLE IF NOT EXISTS game_meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// SaveInfo describes one save slot without its body.
type SaveInfo struct {
	Slot      string
	GameID    string
	Name      string
	Era       string
	TickCount int
	SavedAt   time.Time
}

// Store is a SQLite-backed save-slot store. Snapshot bodies are kept in
// the compressed file format so a slot can be exported as-is.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// OpenStore opens (or creates) the save database at path.
func OpenStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open save db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping save db: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("save store opened", "path", path)
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("migrate save db: %w", err)
	}
	return nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a snapshot into a slot, replacing any previous save there.
func (s *Store) Save(slot string, p *PersistedState) error {
	body, err := EncodeSnapshot(p)
	if err != nil {
		return err
	}

	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT OR REPLACE INTO saves
		(slot, game_id, name, era, tick_count, saved_at, body)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		slot, p.ID, p.Name, string(p.Era), p.TickCount,
		p.SavedAt.UTC().Format(time.RFC3339), body)
	if err != nil {
		return fmt.Errorf("write save slot %s: %w", slot, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}

	s.logger.Info("game saved", "slot", slot, "tick", p.TickCount, "era", p.Era, "bytes", len(body))
	return nil
}

// Load reads the snapshot stored in a slot.
func (s *Store) Load(slot string) (*PersistedState, error) {
	var body []byte
	err := s.db.Get(&body, `SELECT body FROM saves WHERE slot = ?`, slot)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrSaveNotFound, slot)
		}
		return nil, fmt.Errorf("read save slot %s: %w", slot, err)
	}
	return DecodeSnapshot(body)
}

// List returns every save slot, most recent first.
func (s *Store) List() ([]SaveInfo, error) {
	var rows []struct {
		Slot      string `db:"slot"`
		GameID    string `db:"game_id"`
		Name      string `db:"name"`
		Era       string `db:"era"`
		TickCount int    `db:"tick_count"`
		SavedAt   string `db:"saved_at"`
	}
	err := s.db.Select(&rows, `SELECT slot, game_id, name, era, tick_count, saved_at
		FROM saves ORDER BY saved_at DESC, slot ASC`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}

	infos := make([]SaveInfo, 0, len(rows))
	for _, r := range rows {
		savedAt, err := time.Parse(time.RFC3339, r.SavedAt)
		if err != nil {
			return nil, fmt.Errorf("parse saved_at for slot %s: %w", r.Slot, err)
		}
		infos = append(infos, SaveInfo{
			Slot:      r.Slot,
			GameID:    r.GameID,
			Name:      r.Name,
			Era:       r.Era,
			TickCount: r.TickCount,
			SavedAt:   savedAt,
		})
	}
	return infos, nil
}

// Delete removes a save slot.
func (s *Store) Delete(slot string) error {
	res, err := s.db.Exec(`DELETE FROM saves WHERE slot = ?`, slot)
	if err != nil {
		return fmt.Errorf("delete save slot %s: %w", slot, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrSaveNotFound, slot)
	}
	s.logger.Info("save deleted", "slot", slot)
	return nil
}

// SetMeta stores a key-value pair alongside the saves (last slot played
// and similar).
func (s *Store) SetMeta(key, value string) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO game_meta (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("set meta %s: %w", key, err)
	}
	return nil
}

// GetMeta reads a meta value; missing keys return an empty string.
func (s *Store) GetMeta(key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM game_meta WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get meta %s: %w", key, err)
	}
	return value, nil
}
