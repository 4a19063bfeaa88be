package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/godsaeng/pkg/entity"
)

// DocumentStoreI is the whole-document persistence contract: one
// profile document, replaced wholesale on every write. No partial
// updates, no transactions.
type DocumentStoreI interface {
	// Loads the profile document. Missing or unreadable state resolves
	// to the default document, never an error.
	Load(ctx context.Context) (*entity.Document, error)
	// Replaces the stored document with doc.
	Save(ctx context.Context, doc *entity.Document) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
