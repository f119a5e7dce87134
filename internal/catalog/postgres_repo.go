package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const itemColumns = `id, title, reading, cover_url, summary, good_reviews, bad_reviews,
		amazon_link, wikipedia_link, official_link, source_urls, user_id, updated_at`

func scanItem(row pgx.Row) (Item, error) {
	var it Item
	err := row.Scan(
		&it.ID, &it.Title, &it.Reading, &it.CoverURL, &it.Summary,
		&it.PositiveReviews, &it.NegativeReviews,
		&it.AmazonLink, &it.WikipediaLink, &it.OfficialLink,
		&it.SourceURLs, &it.OwnerID, &it.UpdatedAt,
	)
	return it, err
}

func (r *PostgresRepo) GetItem(ctx context.Context, id string) (Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	it, err := scanItem(r.db.QueryRow(ctx, `SELECT `+itemColumns+` FROM manga WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return it, nil
}

func (r *PostgresRepo) UpsertItem(ctx context.Context, it Item) (Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}

	const upsertSQL = `
		INSERT INTO manga (id, title, reading, cover_url, summary, good_reviews, bad_reviews,
		                   amazon_link, wikipedia_link, official_link, source_urls, user_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			reading = EXCLUDED.reading,
			cover_url = EXCLUDED.cover_url,
			summary = EXCLUDED.summary,
			good_reviews = EXCLUDED.good_reviews,
			bad_reviews = EXCLUDED.bad_reviews,
			amazon_link = EXCLUDED.amazon_link,
			wikipedia_link = EXCLUDED.wikipedia_link,
			official_link = EXCLUDED.official_link,
			source_urls = EXCLUDED.source_urls,
			user_id = EXCLUDED.user_id,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + itemColumns

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	stored, err := scanItem(r.db.QueryRow(ctx, upsertSQL,
		it.ID, it.Title, it.Reading, it.CoverURL, it.Summary,
		nonNil(it.PositiveReviews), nonNil(it.NegativeReviews),
		it.AmazonLink, it.WikipediaLink, it.OfficialLink,
		nonNil(it.SourceURLs), it.OwnerID, it.UpdatedAt,
	))
	if err != nil {
		return Item{}, fmt.Errorf("upsert manga: %w", err)
	}
	return stored, nil
}

func (r *PostgresRepo) ListItems(ctx context.Context, q ListQuery) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM manga WHERE ($1 = '' OR user_id = $1) ORDER BY updated_at DESC`
	args := []any{q.OwnerID}
	if q.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, q.Limit)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM manga WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) FindEntity(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return Entity{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ent := Entity{Kind: kind}
	err = r.db.QueryRow(ctx, `SELECT id, name FROM `+t.entity+` WHERE name = $1 LIMIT 1`, name).Scan(&ent.ID, &ent.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entity{}, ErrNotFound
		}
		return Entity{}, err
	}
	return ent, nil
}

func (r *PostgresRepo) CreateEntity(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return Entity{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ent := Entity{Kind: kind}
	insertSQL := `INSERT INTO ` + t.entity + ` (id, name) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name`
	err = r.db.QueryRow(ctx, insertSQL, uuid.NewString(), name).Scan(&ent.ID, &ent.Name)
	if err == nil {
		return ent, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Entity{}, fmt.Errorf("insert %s: %w", kind, err)
	}

	// Lost a race with a concurrent create; the row exists now.
	err = r.db.QueryRow(ctx, `SELECT id, name FROM `+t.entity+` WHERE name = $1`, name).Scan(&ent.ID, &ent.Name)
	if err != nil {
		return Entity{}, fmt.Errorf("select %s after conflict: %w", kind, err)
	}
	return ent, nil
}

func (r *PostgresRepo) LinkEntity(ctx context.Context, kind EntityKind, itemID, entityID string) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	linkSQL := `INSERT INTO ` + t.link + ` (manga_id, ` + t.fk + `)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING`
	_, err = r.db.Exec(ctx, linkSQL, itemID, entityID)
	return err
}

func (r *PostgresRepo) ListLinked(ctx context.Context, kind EntityKind, itemID string) ([]Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT e.id, e.name FROM ` + t.link + ` l
		JOIN ` + t.entity + ` e ON e.id = l.` + t.fk + `
		WHERE l.manga_id = $1
		ORDER BY e.name ASC`
	rows, err := r.db.Query(ctx, query, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Entity{}
	for rows.Next() {
		ent := Entity{Kind: kind}
		if err := rows.Scan(&ent.ID, &ent.Name); err != nil {
			return nil, err
		}
		out = append(out, ent)
	}
	return out, rows.Err()
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
