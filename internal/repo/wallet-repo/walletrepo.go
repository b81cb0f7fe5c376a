package walletrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	query := `
        SELECT balance
        FROM accounts
        WHERE id = $1
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrAccountNotFound
		}
		zap.L().Error("failed to get account balance", zap.Error(err))
		return 0, pg.Classify(err)
	}
	return balance, nil
}

// Debit takes amount from the account in one conditional update; the
// non-negativity guard is evaluated by the database against the row it locks.
func (r *Repository) Debit(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error) {
	query := `
        UPDATE accounts
        SET balance = balance - $2
        WHERE id = $1 AND balance >= $2
        RETURNING balance
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, accountID, amount).Scan(&balance)
	if err == nil {
		return balance, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("failed to debit account", zap.Error(err))
		return 0, pg.Classify(err)
	}

	if _, err := r.GetBalance(ctx, accountID); err != nil {
		return 0, err
	}
	return 0, domain.ErrInsufficientBalance
}
