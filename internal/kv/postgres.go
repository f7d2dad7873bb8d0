package kv

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a ByteStore over a two-column table (id BIGINT PRIMARY KEY,
// value BYTEA). Each entity kind gets its own table.
type Postgres struct {
	db    *pgxpool.Pool
	table string
}

func NewPostgres(db *pgxpool.Pool, table string) *Postgres {
	return &Postgres{db: db, table: pgx.Identifier{table}.Sanitize()}
}

func (p *Postgres) Put(ctx context.Context, id uint64, value []byte) ([]byte, bool, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	var prev []byte
	existed := true
	err = tx.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE id=$1 FOR UPDATE`, p.table), int64(id)).Scan(&prev)
	if err == pgx.ErrNoRows {
		existed = false
	} else if err != nil {
		return nil, false, err
	}

	if _, err := tx.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (id, value) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET value = EXCLUDED.value`, p.table), int64(id), value); err != nil {
		return nil, false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}
	return prev, existed, nil
}

func (p *Postgres) Get(ctx context.Context, id uint64) ([]byte, bool, error) {
	var value []byte
	err := p.db.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE id=$1`, p.table), int64(id)).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (p *Postgres) Delete(ctx context.Context, id uint64) ([]byte, bool, error) {
	var prev []byte
	err := p.db.QueryRow(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1 RETURNING value`, p.table), int64(id)).Scan(&prev)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return prev, true, nil
}

func (p *Postgres) Ascend(ctx context.Context, fn func(id uint64, value []byte) error) error {
	rows, err := p.db.Query(ctx, fmt.Sprintf(`SELECT id, value FROM %s ORDER BY id`, p.table))
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		var value []byte
		if err := rows.Scan(&id, &value); err != nil {
			return err
		}
		if err := fn(uint64(id), value); err != nil {
			if err == ErrStop {
				return nil
			}
			return err
		}
	}
	return rows.Err()
}

// PostgresCell stores the counter in a one-row table
// (name TEXT PRIMARY KEY, value BIGINT).
type PostgresCell struct {
	db    *pgxpool.Pool
	table string
	name  string
}

func NewPostgresCell(db *pgxpool.Pool, table, name string) *PostgresCell {
	return &PostgresCell{db: db, table: pgx.Identifier{table}.Sanitize(), name: name}
}

func (c *PostgresCell) Get(ctx context.Context) (uint64, error) {
	var value int64
	err := c.db.QueryRow(ctx, fmt.Sprintf(`SELECT value FROM %s WHERE name=$1`, c.table), c.name).Scan(&value)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint64(value), nil
}

func (c *PostgresCell) Set(ctx context.Context, v uint64) error {
	_, err := c.db.Exec(ctx, fmt.Sprintf(`INSERT INTO %s (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`, c.table), c.name, int64(v))
	return err
}

var (
	_ ByteStore = (*Postgres)(nil)
	_ Cell      = (*PostgresCell)(nil)
)
