package marketrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/pg"
)

const marketColumns = `id, name, open_time, close_time, is_active, today_winning_number, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) List(ctx context.Context) ([]domain.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        ORDER BY open_time ASC, name ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list markets", zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	var markets []domain.Market
	for rows.Next() {
		market, err := scanMarket(rows)
		if err != nil {
			zap.L().Error("can't scan market row", zap.Error(err))
			return nil, err
		}
		markets = append(markets, *market)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate market rows", zap.Error(err))
		return nil, pg.Classify(err)
	}
	return markets, nil
}

func (r *Repository) Get(ctx context.Context, id uuid.UUID) (*domain.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        WHERE id = $1
    `
	return r.getOne(ctx, "can't get market", query, id)
}

// GetForShare reads the market under a shared row lock, so a concurrent
// result declaration waits for the caller's transaction to finish.
func (r *Repository) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        WHERE id = $1
        FOR SHARE
    `
	return r.getOne(ctx, "can't lock market for share", query, id)
}

func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Market, error) {
	query := `
        SELECT ` + marketColumns + `
        FROM markets
        WHERE id = $1
        FOR UPDATE
    `
	return r.getOne(ctx, "can't lock market for update", query, id)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*domain.Market, error) {
	query := `
        UPDATE markets
        SET is_active = $2, updated_at = $3
        WHERE id = $1
        RETURNING ` + marketColumns
	return r.getOne(ctx, "can't toggle market", query, id, active, now)
}

// SetResult records the winning number and closes the market.
func (r *Repository) SetResult(ctx context.Context, id uuid.UUID, winningNumber string, now time.Time) (*domain.Market, error) {
	query := `
        UPDATE markets
        SET today_winning_number = $2, is_active = FALSE, updated_at = $3
        WHERE id = $1
        RETURNING ` + marketColumns
	return r.getOne(ctx, "can't set market result", query, id, winningNumber, now)
}

func (r *Repository) ResetForNewDay(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Market, error) {
	query := `
        UPDATE markets
        SET today_winning_number = NULL, is_active = TRUE, updated_at = $2
        WHERE id = $1
        RETURNING ` + marketColumns
	return r.getOne(ctx, "can't reset market", query, id, now)
}

func (r *Repository) UpdateHours(ctx context.Context, id uuid.UUID, opens, closes domain.TimeOfDay, now time.Time) (*domain.Market, error) {
	query := `
        UPDATE markets
        SET open_time = $2, close_time = $3, updated_at = $4
        WHERE id = $1
        RETURNING ` + marketColumns
	return r.getOne(ctx, "can't update market hours", query, id, toPgTime(opens), toPgTime(closes), now)
}

func (r *Repository) getOne(ctx context.Context, msg, query string, args ...any) (*domain.Market, error) {
	market, err := scanMarket(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error(msg, zap.Error(err))
		return nil, pg.Classify(err)
	}
	return market, nil
}

func scanMarket(row pgx.Row) (*domain.Market, error) {
	var (
		market        domain.Market
		opens, closes pgtype.Time
	)
	err := row.Scan(&market.ID, &market.Name, &opens, &closes, &market.IsActive, &market.TodayWinningNumber, &market.UpdatedAt)
	if err != nil {
		return nil, err
	}
	market.OpenTime = domain.TimeOfDayFromMicros(opens.Microseconds)
	market.CloseTime = domain.TimeOfDayFromMicros(closes.Microseconds)
	return &market, nil
}

func toPgTime(t domain.TimeOfDay) pgtype.Time {
	return pgtype.Time{Microseconds: t.Micros(), Valid: true}
}
