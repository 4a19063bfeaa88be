package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/limbo/godsaeng/pkg/cleanup"
	"github.com/limbo/godsaeng/pkg/entity"
)

// PGStore holds the profile document as one jsonb row and upserts it
// whole, keeping the same replace-the-document semantics as FileStore.
type PGStore struct {
	conn      PgConnection
	profileID string
}

func NewPGStore(cfg DBConfig, profileID string) *PGStore {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for document store error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for document store: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	ps := &PGStore{
		conn:      pool,
		profileID: profileID,
	}
	_, err = pool.Exec(context.Background(),
		`CREATE TABLE IF NOT EXISTS profile_documents (id TEXT PRIMARY KEY, doc JSONB NOT NULL);`)
	if err != nil {
		log.Fatal("creating profile_documents table error: " + err.Error())
	}
	return ps
}

func NewPGStoreWithConn(conn PgConnection, profileID string) *PGStore {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for document store: " + err.Error())
	}
	return &PGStore{
		conn:      conn,
		profileID: profileID,
	}
}

func (ps *PGStore) Load(ctx context.Context) (*entity.Document, error) {
	var raw []byte
	row := ps.conn.QueryRow(ctx, `SELECT doc FROM profile_documents WHERE id = $1;`, ps.profileID)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultDocument(), nil
		}
		return nil, errors.New("loading document error: " + err.Error())
	}
	var doc entity.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		slog.Warn("malformed stored document, starting from default", slog.String("profile", ps.profileID), slog.String("error", err.Error()))
		return DefaultDocument(), nil
	}
	return normalize(&doc), nil
}

func (ps *PGStore) Save(ctx context.Context, doc *entity.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.New("encoding document error: " + err.Error())
	}
	_, err = ps.conn.Exec(ctx,
		`INSERT INTO profile_documents (id, doc) VALUES ($1, $2) ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc;`,
		ps.profileID,
		raw,
	)
	if err != nil {
		return errors.New("saving document error: " + err.Error())
	}
	return nil
}
