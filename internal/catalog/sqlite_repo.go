package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// sqliteTime is fixed width so that text ordering matches time ordering.
const sqliteTime = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteRepo stores the catalog in SQLite. List columns hold JSON arrays.
type SQLiteRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

func NewSQLiteRepo(db *sqlx.DB, timeout time.Duration) *SQLiteRepo {
	return &SQLiteRepo{db: db, timeout: timeout}
}

func (r *SQLiteRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

type sqliteItem struct {
	ID            string `db:"id"`
	Title         string `db:"title"`
	Reading       string `db:"reading"`
	CoverURL      string `db:"cover_url"`
	Summary       string `db:"summary"`
	GoodReviews   string `db:"good_reviews"`
	BadReviews    string `db:"bad_reviews"`
	AmazonLink    string `db:"amazon_link"`
	WikipediaLink string `db:"wikipedia_link"`
	OfficialLink  string `db:"official_link"`
	SourceURLs    string `db:"source_urls"`
	UserID        string `db:"user_id"`
	UpdatedAt     string `db:"updated_at"`
}

func toSQLiteItem(it Item) sqliteItem {
	return sqliteItem{
		ID:            it.ID,
		Title:         it.Title,
		Reading:       it.Reading,
		CoverURL:      it.CoverURL,
		Summary:       it.Summary,
		GoodReviews:   marshalList(it.PositiveReviews),
		BadReviews:    marshalList(it.NegativeReviews),
		AmazonLink:    it.AmazonLink,
		WikipediaLink: it.WikipediaLink,
		OfficialLink:  it.OfficialLink,
		SourceURLs:    marshalList(it.SourceURLs),
		UserID:        it.OwnerID,
		UpdatedAt:     it.UpdatedAt.UTC().Format(sqliteTime),
	}
}

func (row sqliteItem) item() (Item, error) {
	it := Item{
		ID:            row.ID,
		Title:         row.Title,
		Reading:       row.Reading,
		CoverURL:      row.CoverURL,
		Summary:       row.Summary,
		AmazonLink:    row.AmazonLink,
		WikipediaLink: row.WikipediaLink,
		OfficialLink:  row.OfficialLink,
		OwnerID:       row.UserID,
	}
	var err error
	if it.PositiveReviews, err = unmarshalList(row.GoodReviews); err != nil {
		return Item{}, fmt.Errorf("good_reviews: %w", err)
	}
	if it.NegativeReviews, err = unmarshalList(row.BadReviews); err != nil {
		return Item{}, fmt.Errorf("bad_reviews: %w", err)
	}
	if it.SourceURLs, err = unmarshalList(row.SourceURLs); err != nil {
		return Item{}, fmt.Errorf("source_urls: %w", err)
	}
	if it.UpdatedAt, err = time.Parse(sqliteTime, row.UpdatedAt); err != nil {
		return Item{}, fmt.Errorf("updated_at: %w", err)
	}
	return it, nil
}

func marshalList(s []string) string {
	if s == nil {
		s = []string{}
	}
	b, _ := json.Marshal(s)
	return string(b)
}

func unmarshalList(raw string) ([]string, error) {
	out := []string{}
	if raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *SQLiteRepo) GetItem(ctx context.Context, id string) (Item, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var row sqliteItem
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM manga WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Item{}, ErrNotFound
		}
		return Item{}, err
	}
	return row.item()
}

func (r *SQLiteRepo) UpsertItem(ctx context.Context, it Item) (Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}

	const upsertSQL = `
		INSERT INTO manga (id, title, reading, cover_url, summary, good_reviews, bad_reviews,
		                   amazon_link, wikipedia_link, official_link, source_urls, user_id, updated_at)
		VALUES (:id, :title, :reading, :cover_url, :summary, :good_reviews, :bad_reviews,
		        :amazon_link, :wikipedia_link, :official_link, :source_urls, :user_id, :updated_at)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			reading = excluded.reading,
			cover_url = excluded.cover_url,
			summary = excluded.summary,
			good_reviews = excluded.good_reviews,
			bad_reviews = excluded.bad_reviews,
			amazon_link = excluded.amazon_link,
			wikipedia_link = excluded.wikipedia_link,
			official_link = excluded.official_link,
			source_urls = excluded.source_urls,
			user_id = excluded.user_id,
			updated_at = excluded.updated_at`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.NamedExecContext(ctx, upsertSQL, toSQLiteItem(it)); err != nil {
		return Item{}, fmt.Errorf("upsert manga: %w", err)
	}

	var row sqliteItem
	if err := r.db.GetContext(ctx, &row, `SELECT * FROM manga WHERE id = ?`, it.ID); err != nil {
		return Item{}, fmt.Errorf("reload manga: %w", err)
	}
	return row.item()
}

func (r *SQLiteRepo) ListItems(ctx context.Context, q ListQuery) ([]Item, error) {
	query := `SELECT * FROM manga WHERE (? = '' OR user_id = ?) ORDER BY updated_at DESC`
	args := []any{q.OwnerID, q.OwnerID}
	if q.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, q.Limit)
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var rows []sqliteItem
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}
	out := make([]Item, 0, len(rows))
	for _, row := range rows {
		it, err := row.item()
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, nil
}

func (r *SQLiteRepo) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM manga WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SQLiteRepo) FindEntity(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return Entity{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	ent := Entity{Kind: kind}
	err = r.db.QueryRowxContext(ctx, `SELECT id, name FROM `+t.entity+` WHERE name = ? LIMIT 1`, name).Scan(&ent.ID, &ent.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entity{}, ErrNotFound
		}
		return Entity{}, err
	}
	return ent, nil
}

func (r *SQLiteRepo) CreateEntity(ctx context.Context, kind EntityKind, name string) (Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return Entity{}, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO `+t.entity+` (id, name) VALUES (?, ?) ON CONFLICT (name) DO NOTHING`,
		uuid.NewString(), name,
	); err != nil {
		return Entity{}, fmt.Errorf("insert %s: %w", kind, err)
	}

	ent := Entity{Kind: kind}
	if err := r.db.QueryRowxContext(ctx, `SELECT id, name FROM `+t.entity+` WHERE name = ?`, name).Scan(&ent.ID, &ent.Name); err != nil {
		return Entity{}, fmt.Errorf("select %s: %w", kind, err)
	}
	return ent, nil
}

func (r *SQLiteRepo) LinkEntity(ctx context.Context, kind EntityKind, itemID, entityID string) error {
	t, err := tablesFor(kind)
	if err != nil {
		return err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO `+t.link+` (manga_id, `+t.fk+`) VALUES (?, ?) ON CONFLICT DO NOTHING`,
		itemID, entityID,
	)
	return err
}

func (r *SQLiteRepo) ListLinked(ctx context.Context, kind EntityKind, itemID string) ([]Entity, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	query := `SELECT e.id, e.name FROM ` + t.link + ` l
		JOIN ` + t.entity + ` e ON e.id = l.` + t.fk + `
		WHERE l.manga_id = ?
		ORDER BY e.name ASC`

	var rows []struct {
		ID   string `db:"id"`
		Name string `db:"name"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, itemID); err != nil {
		return nil, err
	}
	out := make([]Entity, 0, len(rows))
	for _, row := range rows {
		out = append(out, Entity{ID: row.ID, Kind: kind, Name: row.Name})
	}
	return out, nil
}

// CountLinks returns the number of link rows for itemID. Used by tests and
// diagnostics to check that relinking does not add rows.
func (r *SQLiteRepo) CountLinks(ctx context.Context, kind EntityKind, itemID string) (int, error) {
	t, err := tablesFor(kind)
	if err != nil {
		return 0, err
	}
	var n int
	err = r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM `+t.link+` WHERE manga_id = ?`, itemID)
	return n, err
}
