package wagerservice

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/events"
	"github.com/GlebRadaev/wagerhall/internal/game"
	"github.com/GlebRadaev/wagerhall/internal/metrics"
	"github.com/GlebRadaev/wagerhall/internal/pg"
)

//go:generate mockgen -source=wagerservice.go -destination=mock_wagerservice.go -package=wagerservice

const historyLimit = 100

type MarketRepo interface {
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Market, error)
}

type WalletRepo interface {
	GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error)
	Debit(ctx context.Context, accountID uuid.UUID, amount int64) (int64, error)
}

type WagerRepo interface {
	Create(ctx context.Context, wager *domain.Wager) error
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]domain.Wager, error)
}

type Notifier interface {
	Notify(event events.Event)
}

type PlaceWagerRequest struct {
	AccountID uuid.UUID
	MarketID  uuid.UUID
	GameType  domain.GameType
	Number    string
	Amount    int64
}

type PlaceWagerResult struct {
	Wager      *domain.Wager
	NewBalance int64
}

type Service struct {
	txManager pg.TXManager
	markets   MarketRepo
	wallet    WalletRepo
	wagers    WagerRepo
	notifier  Notifier
	loc       *time.Location
	now       func() time.Time
}

func New(txManager pg.TXManager, markets MarketRepo, wallet WalletRepo, wagers WagerRepo, notifier Notifier, loc *time.Location) *Service {
	return &Service{
		txManager: txManager,
		markets:   markets,
		wallet:    wallet,
		wagers:    wagers,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

// PlaceWager validates the request, then checks the market, debits the
// wallet and records the wager in a single transaction.
func (s *Service) PlaceWager(ctx context.Context, req PlaceWagerRequest) (*PlaceWagerResult, error) {
	if req.Amount <= 0 {
		metrics.WagerRejected(domain.ErrInvalidStake.Code)
		return nil, domain.ErrInvalidStake
	}
	number, err := game.Normalize(req.GameType, req.Number)
	if err != nil {
		metrics.WagerRejected(errorCode(err))
		return nil, err
	}

	wager := &domain.Wager{
		ID:        uuid.New(),
		AccountID: req.AccountID,
		MarketID:  req.MarketID,
		GameType:  req.GameType,
		Number:    number,
		Amount:    req.Amount,
		Status:    domain.WagerPending,
	}

	var newBalance int64
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		market, err := s.markets.GetForShare(ctx, req.MarketID)
		if err != nil {
			return err
		}
		if market == nil {
			return domain.ErrMarketNotFound
		}
		if !market.IsActive {
			return domain.ErrMarketClosed
		}
		now := s.now().In(s.loc)
		if !market.InWindow(now) {
			return domain.ErrMarketOutsideHours
		}

		newBalance, err = s.wallet.Debit(ctx, req.AccountID, req.Amount)
		if err != nil {
			return err
		}

		wager.MarketName = market.Name
		wager.CreatedAt = now
		return s.wagers.Create(ctx, wager)
	})
	if err != nil {
		metrics.WagerRejected(errorCode(err))
		zap.L().Info("wager rejected",
			zap.String("account_id", req.AccountID.String()),
			zap.String("market_id", req.MarketID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.WagerPlaced(string(wager.GameType), wager.Amount)
	s.notifier.Notify(events.BalanceUpdated(req.AccountID, newBalance, wager.CreatedAt))
	zap.L().Info("wager placed",
		zap.String("wager_id", wager.ID.String()),
		zap.String("account_id", req.AccountID.String()),
		zap.String("game_type", string(wager.GameType)),
		zap.Int64("amount", wager.Amount),
	)

	return &PlaceWagerResult{
		Wager:      wager,
		NewBalance: newBalance,
	}, nil
}

func errorCode(err error) string {
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

func (s *Service) GetBalance(ctx context.Context, accountID uuid.UUID) (int64, error) {
	balance, err := s.wallet.GetBalance(ctx, accountID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (s *Service) GetWagers(ctx context.Context, accountID uuid.UUID) ([]domain.Wager, error) {
	wagers, err := s.wagers.ListByAccount(ctx, accountID, historyLimit)
	if err != nil {
		zap.L().Error("failed to get wagers", zap.Error(err))
		return nil, err
	}
	return wagers, nil
}
