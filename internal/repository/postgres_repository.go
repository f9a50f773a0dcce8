package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/unclebandit/campaign-insights/internal/model"
)

// Schema creates the four tables read by PostgresDatasetRepository.
const Schema = `
CREATE TABLE IF NOT EXISTS influencers (
    id             INTEGER PRIMARY KEY,
    name           TEXT NOT NULL,
    category       TEXT NOT NULL,
    gender         TEXT NOT NULL,
    follower_count INTEGER NOT NULL,
    platform       TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS posts (
    row_no        INTEGER NOT NULL,
    influencer_id INTEGER NOT NULL,
    platform      TEXT NOT NULL,
    date          DATE NOT NULL,
    url           TEXT NOT NULL,
    caption       TEXT NOT NULL,
    reach         INTEGER NOT NULL,
    likes         INTEGER NOT NULL,
    comments      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tracking_data (
    row_no        INTEGER NOT NULL,
    source        TEXT NOT NULL,
    campaign      TEXT NOT NULL,
    influencer_id INTEGER NOT NULL,
    user_id       TEXT NOT NULL,
    product       TEXT NOT NULL,
    date          DATE NOT NULL,
    orders        INTEGER NOT NULL,
    revenue       DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS payouts (
    influencer_id INTEGER NOT NULL,
    basis         TEXT NOT NULL,
    rate          DOUBLE PRECISION NOT NULL,
    orders        INTEGER NOT NULL,
    total_payout  DOUBLE PRECISION NOT NULL
);

ALTER TABLE posts ADD COLUMN IF NOT EXISTS row_no INTEGER NOT NULL DEFAULT 0;
ALTER TABLE tracking_data ADD COLUMN IF NOT EXISTS row_no INTEGER NOT NULL DEFAULT 0;
`

// Posts and tracking rows come back in file order (row_no) so first-seen
// option order, and with it the default campaign, is stable across reloads.
const (
	selectInfluencers = `SELECT id, name, category, gender, follower_count, platform FROM influencers ORDER BY id`
	selectPosts       = `SELECT influencer_id, platform, date, url, caption, reach, likes, comments FROM posts ORDER BY row_no`
	selectTracking    = `SELECT source, campaign, influencer_id, user_id, product, date, orders, revenue FROM tracking_data ORDER BY row_no`
	selectPayouts     = `SELECT influencer_id, basis, rate, orders, total_payout FROM payouts ORDER BY influencer_id`
)

// PostgresDatasetRepository reads a snapshot from the four tables. The
// dashboard never writes through it; Replace exists for the seeder.
type PostgresDatasetRepository struct {
	DB *sql.DB
}

func (r *PostgresDatasetRepository) Name() string {
	return "postgres"
}

func (r *PostgresDatasetRepository) Load(ctx context.Context) (*model.Dataset, error) {
	ds := &model.Dataset{Source: r.Name(), LoadedAt: time.Now()}
	var err error
	if ds.Influencers, err = r.listInfluencers(ctx); err != nil {
		return nil, fmt.Errorf("load influencers: %w", err)
	}
	if ds.Posts, err = r.listPosts(ctx); err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if ds.Tracking, err = r.listTracking(ctx); err != nil {
		return nil, fmt.Errorf("load tracking_data: %w", err)
	}
	if ds.Payouts, err = r.listPayouts(ctx); err != nil {
		return nil, fmt.Errorf("load payouts: %w", err)
	}
	return ds, nil
}

func (r *PostgresDatasetRepository) listInfluencers(ctx context.Context) ([]model.Influencer, error) {
	rows, err := r.DB.QueryContext(ctx, selectInfluencers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Influencer{}
	for rows.Next() {
		var i model.Influencer
		if err := rows.Scan(&i.ID, &i.Name, &i.Category, &i.Gender, &i.FollowerCount, &i.Platform); err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *PostgresDatasetRepository) listPosts(ctx context.Context) ([]model.Post, error) {
	rows, err := r.DB.QueryContext(ctx, selectPosts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Post{}
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.InfluencerID, &p.Platform, &p.Date, &p.URL, &p.Caption, &p.Reach, &p.Likes, &p.Comments); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresDatasetRepository) listTracking(ctx context.Context) ([]model.TrackingRecord, error) {
	rows, err := r.DB.QueryContext(ctx, selectTracking)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TrackingRecord{}
	for rows.Next() {
		var t model.TrackingRecord
		if err := rows.Scan(&t.Source, &t.Campaign, &t.InfluencerID, &t.UserID, &t.Product, &t.Date, &t.Orders, &t.Revenue); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *PostgresDatasetRepository) listPayouts(ctx context.Context) ([]model.Payout, error) {
	rows, err := r.DB.QueryContext(ctx, selectPayouts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Payout{}
	for rows.Next() {
		var p model.Payout
		if err := rows.Scan(&p.InfluencerID, &p.Basis, &p.Rate, &p.Orders, &p.TotalPayout); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Replace truncates the four tables and bulk-loads ds in one transaction.
func (r *PostgresDatasetRepository) Replace(ctx context.Context, ds *model.Dataset) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `TRUNCATE influencers, posts, tracking_data, payouts`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	if err := copyRows(ctx, tx, "influencers", []string{"id", "name", "category", "gender", "follower_count", "platform"}, len(ds.Influencers), func(i int) []any {
		v := ds.Influencers[i]
		return []any{v.ID, v.Name, v.Category, v.Gender, v.FollowerCount, v.Platform}
	}); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "posts", []string{"row_no", "influencer_id", "platform", "date", "url", "caption", "reach", "likes", "comments"}, len(ds.Posts), func(i int) []any {
		v := ds.Posts[i]
		return []any{i, v.InfluencerID, v.Platform, v.Date, v.URL, v.Caption, v.Reach, v.Likes, v.Comments}
	}); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "tracking_data", []string{"row_no", "source", "campaign", "influencer_id", "user_id", "product", "date", "orders", "revenue"}, len(ds.Tracking), func(i int) []any {
		v := ds.Tracking[i]
		return []any{i, v.Source, v.Campaign, v.InfluencerID, v.UserID, v.Product, v.Date, v.Orders, v.Revenue}
	}); err != nil {
		return err
	}
	if err := copyRows(ctx, tx, "payouts", []string{"influencer_id", "basis", "rate", "orders", "total_payout"}, len(ds.Payouts), func(i int) []any {
		v := ds.Payouts[i]
		return []any{v.InfluencerID, v.Basis, v.Rate, v.Orders, v.TotalPayout}
	}); err != nil {
		return err
	}

	return tx.Commit()
}

func copyRows(ctx context.Context, tx *sql.Tx, tableName string, columns []string, n int, row func(i int) []any) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(tableName, columns...))
	if err != nil {
		return fmt.Errorf("prepare copy %s: %w", tableName, err)
	}
	for i := 0; i < n; i++ {
		if _, err := stmt.ExecContext(ctx, row(i)...); err != nil {
			stmt.Close()
			return fmt.Errorf("copy %s row %d: %w", tableName, i, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy %s: %w", tableName, err)
	}
	return stmt.Close()
}

var _ DatasetRepositoryInterface = (*PostgresDatasetRepository)(nil)
