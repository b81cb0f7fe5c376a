package wagerrepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, wager *domain.Wager) error {
	query := `
        INSERT INTO wagers (id, account_id, market_id, game_type, number, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.db.Exec(ctx, query, wager.ID, wager.AccountID, wager.MarketID, string(wager.GameType), wager.Number, wager.Amount, string(wager.Status), wager.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wager", zap.Error(err))
		return pg.Classify(err)
	}
	return nil
}

// MarkPendingLost moves every pending wager placed on the market within
// [from, to) to lost and stamps it with settledAt.
func (r *Repository) MarkPendingLost(ctx context.Context, marketID uuid.UUID, from, to, settledAt time.Time) (int64, error) {
	query := `
        UPDATE wagers
        SET status = 'lost', settled_at = $4
        WHERE market_id = $1 AND status = 'pending' AND created_at >= $2 AND created_at < $3
    `
	tag, err := r.db.Exec(ctx, query, marketID, from, to, settledAt)
	if err != nil {
		zap.L().Error("can't mark pending wagers lost", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return tag.RowsAffected(), nil
}

// PromoteWinners turns the wagers lost at settledAt into won when their number
// matches: panna wagers compare against pannaNumber, the rest against number.
func (r *Repository) PromoteWinners(ctx context.Context, marketID uuid.UUID, settledAt time.Time, number, pannaNumber string) (int64, error) {
	query := `
        UPDATE wagers
        SET status = 'won'
        WHERE market_id = $1 AND status = 'lost' AND settled_at = $2
          AND ((game_type IN ('single_panna', 'double_panna', 'triple_panna') AND number = $4)
            OR (game_type NOT IN ('single_panna', 'double_panna', 'triple_panna') AND number = $3))
    `
	tag, err := r.db.Exec(ctx, query, marketID, settledAt, number, pannaNumber)
	if err != nil {
		zap.L().Error("can't promote winning wagers", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Wager, error) {
	query := `
        SELECT w.id, w.account_id, w.market_id, m.name, w.game_type, w.number, w.amount, w.status, w.created_at, w.settled_at
        FROM wagers w
        JOIN markets m ON m.id = w.market_id
        WHERE w.account_id = $1
        ORDER BY w.created_at DESC
        LIMIT $2
    `
	return r.list(ctx, "can't get account wagers", query, accountID, limit)
}

func (r *Repository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Wager, error) {
	query := `
        SELECT w.id, w.account_id, w.market_id, m.name, w.game_type, w.number, w.amount, w.status, w.created_at, w.settled_at
        FROM wagers w
        JOIN markets m ON m.id = w.market_id
        WHERE w.created_at >= $1 AND w.created_at < $2
        ORDER BY w.created_at DESC
    `
	return r.list(ctx, "can't get wagers for period", query, from, to)
}

func (r *Repository) list(ctx context.Context, msg, query string, args ...any) ([]domain.Wager, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error(msg, zap.Error(err))
		return nil, pg.Classify(err)
	}
	defer rows.Close()

	var wagers []domain.Wager
	for rows.Next() {
		wager, err := scanWager(rows)
		if err != nil {
			zap.L().Error("can't scan wager row", zap.Error(err))
			return nil, err
		}
		wagers = append(wagers, *wager)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error(msg, zap.Error(err))
		return nil, pg.Classify(err)
	}
	return wagers, nil
}

func scanWager(row pgx.Row) (*domain.Wager, error) {
	var (
		wager            domain.Wager
		gameType, status string
	)
	err := row.Scan(&wager.ID, &wager.AccountID, &wager.MarketID, &wager.MarketName, &gameType, &wager.Number, &wager.Amount, &status, &wager.CreatedAt, &wager.SettledAt)
	if err != nil {
		return nil, err
	}
	wager.GameType = domain.GameType(gameType)
	wager.Status = domain.WagerStatus(status)
	return &wager, nil
}
