package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paologalligit/moffi-booker/entities"
)

// SessionStore persists the authentication session across process restarts.
// Implementations: FileSessionStore, PostgresSessionStore.
type SessionStore interface {
	Load(ctx context.Context) (entities.Session, error)
	Save(ctx context.Context, session entities.Session) error
}

// FileSessionStore implements SessionStore as a JSON file on disk.
type FileSessionStore struct {
	FilePath string
	mu       sync.Mutex
}

func NewFileSessionStore(filePath string) *FileSessionStore {
	return &FileSessionStore{FilePath: filePath}
}

// Load returns an empty session when the file does not exist yet; a session
// starts empty and grows from there.
func (f *FileSessionStore) Load(ctx context.Context) (entities.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := os.ReadFile(f.FilePath)
	if errors.Is(err, os.ErrNotExist) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("error reading session file: %w", err)
	}
	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return entities.Session{}, fmt.Errorf("error parsing session file: %w", err)
	}
	return session, nil
}

func (f *FileSessionStore) Save(ctx context.Context, session entities.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling session: %w", err)
	}
	if err := os.WriteFile(f.FilePath, data, 0600); err != nil {
		return fmt.Errorf("error writing session file: %w", err)
	}
	return nil
}

// PostgresSessionStore implements SessionStore on the moffi_session table.
// Only one session row is tracked system-wide.
type PostgresSessionStore struct {
	Pool *pgxpool.Pool
}

func NewPostgresSessionStore(pool *pgxpool.Pool) *PostgresSessionStore {
	return &PostgresSessionStore{Pool: pool}
}

func (p *PostgresSessionStore) Load(ctx context.Context) (entities.Session, error) {
	var session entities.Session
	err := p.Pool.QueryRow(ctx, `
		SELECT token, cookies FROM moffi_session WHERE id = 1
	`).Scan(&session.Token, &session.Cookies)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("error loading session: %w", err)
	}
	return session, nil
}

func (p *PostgresSessionStore) Save(ctx context.Context, session entities.Session) error {
	_, err := p.Pool.Exec(ctx, `
		INSERT INTO moffi_session (id, token, cookies, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT (id) DO UPDATE SET token = $1, cookies = $2, updated_at = now()
	`, session.Token, session.Cookies)
	if err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	return nil
}
