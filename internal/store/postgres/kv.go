package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KV keeps one JSONB row per collection document. Updates replace the whole
// document, mirroring the read-modify-write discipline of the store layer.
type KV struct {
	pool *pgxpool.Pool
}

func NewKV(pool *pgxpool.Pool) *KV {
	return &KV{pool: pool}
}

// InitSchema creates the documents table when it does not exist yet.
func (k *KV) InitSchema(ctx context.Context) error {
	const q = `
create table if not exists store_documents (
    key        text primary key,
    doc        jsonb not null,
    updated_at timestamptz not null default now()
);
`
	if _, err := k.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const q = `select doc from store_documents where key = $1;`

	var data []byte
	err := k.pool.QueryRow(ctx, q, key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select document %s: %w", key, err)
	}
	return data, true, nil
}

func (k *KV) Set(ctx context.Context, key string, data []byte) error {
	const q = `
insert into store_documents (key, doc)
values ($1, $2)
on conflict (key) do update set doc = excluded.doc, updated_at = now();
`
	if _, err := k.pool.Exec(ctx, q, key, data); err != nil {
		return fmt.Errorf("upsert document %s: %w", key, err)
	}
	return nil
}

func (k *KV) Ping(ctx context.Context) error {
	return k.pool.Ping(ctx)
}
