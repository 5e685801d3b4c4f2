package eventrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adspot/model"
)

// Repo mirrors the canonical in-memory event log into Postgres for
// off-system indexers. Writes are best-effort: the services log a
// failed insert and keep going, the in-memory log stays canonical.
type Repo interface {
	Insert(ctx context.Context, e model.Event) error
	ListByAsset(ctx context.Context, assetID int64, limit int) ([]model.Event, error)
}

type repo struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Repo { return &repo{pool: pool} }

func (r *repo) Insert(ctx context.Context, e model.Event) error {
	const q = `
INSERT INTO market_events (id, type, asset_id, actor, counterparty, amount, fee, start_at, end_at, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := r.pool.Exec(ctx, q,
		e.ID, string(e.Type), e.AssetID, e.Actor, e.Counterparty,
		e.Amount, e.Fee, e.Start, e.End, e.CreatedAt,
	)
	return err
}

func (r *repo) ListByAsset(ctx context.Context, assetID int64, limit int) ([]model.Event, error) {
	const q = `
SELECT id, type, asset_id, actor, counterparty, amount, fee, start_at, end_at, created_at
FROM market_events
WHERE asset_id = $1
ORDER BY created_at DESC
LIMIT $2`
	rows, err := r.pool.Query(ctx, q, assetID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Event
	for rows.Next() {
		var e model.Event
		var typ string
		var start, end *time.Time
		if err := rows.Scan(&e.ID, &typ, &e.AssetID, &e.Actor, &e.Counterparty,
			&e.Amount, &e.Fee, &start, &end, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = model.EventType(typ)
		e.Start, e.End = start, end
		out = append(out, e)
	}
	return out, rows.Err()
}

// Nop discards inserts. Used in tests and when no DATABASE_URL is set.
type Nop struct{}

func (Nop) Insert(context.Context, model.Event) error { return nil }
func (Nop) ListByAsset(context.Context, int64, int) ([]model.Event, error) {
	return nil, nil
}
