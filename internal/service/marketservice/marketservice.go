package marketservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/events"
	"github.com/GlebRadaev/wagerhall/internal/game"
	"github.com/GlebRadaev/wagerhall/internal/metrics"
	"github.com/GlebRadaev/wagerhall/internal/pg"
)

//go:generate mockgen -source=marketservice.go -destination=mock_marketservice.go -package=marketservice

const resetConcurrency = 4

type MarketRepo interface {
	List(ctx context.Context) ([]domain.Market, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Market, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Market, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool, now time.Time) (*domain.Market, error)
	SetResult(ctx context.Context, id uuid.UUID, winningNumber string, now time.Time) (*domain.Market, error)
	ResetForNewDay(ctx context.Context, id uuid.UUID, now time.Time) (*domain.Market, error)
	UpdateHours(ctx context.Context, id uuid.UUID, opens, closes domain.TimeOfDay, now time.Time) (*domain.Market, error)
}

type WagerRepo interface {
	MarkPendingLost(ctx context.Context, marketID uuid.UUID, from, to, settledAt time.Time) (int64, error)
	PromoteWinners(ctx context.Context, marketID uuid.UUID, settledAt time.Time, number, pannaNumber string) (int64, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]domain.Wager, error)
}

type Notifier interface {
	Notify(event events.Event)
}

type Service struct {
	txManager pg.TXManager
	markets   MarketRepo
	wagers    WagerRepo
	notifier  Notifier
	loc       *time.Location
	now       func() time.Time
}

func New(txManager pg.TXManager, markets MarketRepo, wagers WagerRepo, notifier Notifier, loc *time.Location) *Service {
	return &Service{
		txManager: txManager,
		markets:   markets,
		wagers:    wagers,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

// clock returns the current instant in the market zone, truncated to the
// precision the store keeps.
func (s *Service) clock() time.Time {
	return s.now().In(s.loc).Truncate(time.Microsecond)
}

func (s *Service) ListMarkets(ctx context.Context) ([]domain.MarketView, error) {
	markets, err := s.markets.List(ctx)
	if err != nil {
		zap.L().Error("failed to list markets", zap.Error(err))
		return nil, err
	}

	now := s.clock()
	views := make([]domain.MarketView, 0, len(markets))
	for i := range markets {
		views = append(views, markets[i].ViewAt(now))
	}
	return views, nil
}

func (s *Service) GetMarket(ctx context.Context, id uuid.UUID) (*domain.MarketView, error) {
	market, err := s.markets.Get(ctx, id)
	if err != nil {
		zap.L().Error("failed to get market", zap.Error(err))
		return nil, err
	}
	if market == nil {
		return nil, domain.ErrMarketNotFound
	}
	view := market.ViewAt(s.clock())
	return &view, nil
}

// Toggle sets is_active. A nil active flips the current value. The
// operating window is not consulted.
func (s *Service) Toggle(ctx context.Context, id uuid.UUID, active *bool) (*domain.Market, error) {
	now := s.clock()
	var market *domain.Market
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.markets.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrMarketNotFound
		}

		target := !current.IsActive
		if active != nil {
			target = *active
		}
		market, err = s.markets.SetActive(ctx, id, target, now)
		return err
	})
	return s.finish(domain.ActionToggleStatus, id, market, err, now)
}

// DeclareResult records the winning number, closes the market and settles
// every wager placed on it today: all pending wagers become lost, then the
// ones whose number matches are promoted to won.
func (s *Service) DeclareResult(ctx context.Context, id uuid.UUID, winningNumber string) (*domain.Market, error) {
	number := strings.TrimSpace(winningNumber)
	if number == "" {
		return nil, domain.ErrMissingWinningNumber
	}
	if !game.IsWinningNumber(number) {
		return nil, domain.ErrInvalidWinningNumber
	}
	pannaNumber := number
	if len(number) == 3 {
		canonical, err := game.Canonicalize(number)
		if err != nil {
			return nil, err
		}
		pannaNumber = canonical
	}

	now := s.clock()
	from, to := domain.DayBounds(now)
	settlement := &domain.Settlement{MarketID: id, WinningNumber: number, SettledAt: now}

	var market *domain.Market
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.markets.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrMarketNotFound
		}
		if current.TodayWinningNumber != nil {
			return domain.ErrAlreadyDeclared
		}

		market, err = s.markets.SetResult(ctx, id, number, now)
		if err != nil {
			return err
		}

		settled, err := s.wagers.MarkPendingLost(ctx, id, from, to, now)
		if err != nil {
			return err
		}
		won, err := s.wagers.PromoteWinners(ctx, id, now, number, pannaNumber)
		if err != nil {
			return err
		}

		settlement.Won = won
		settlement.Lost = settled - won
		return nil
	})

	market, err = s.finish(domain.ActionDeclareResult, id, market, err, now)
	if err != nil {
		return nil, err
	}

	metrics.WagersSettled(settlement.Won, settlement.Lost)
	s.notifier.Notify(events.MarketSettled(settlement))
	zap.L().Info("market settled",
		zap.String("market_id", id.String()),
		zap.String("winning_number", number),
		zap.Int64("won", settlement.Won),
		zap.Int64("lost", settlement.Lost),
	)
	return market, nil
}

// ResetForNewDay clears the declared result and reopens the market. Wager
// history is left untouched.
func (s *Service) ResetForNewDay(ctx context.Context, id uuid.UUID) (*domain.Market, error) {
	now := s.clock()
	market, err := s.markets.ResetForNewDay(ctx, id, now)
	if err == nil && market == nil {
		err = domain.ErrMarketNotFound
	}
	return s.finish(domain.ActionDailyReset, id, market, err, now)
}

// UpdateOperatingHours changes either or both window bounds. The resulting
// window must still open before it closes.
func (s *Service) UpdateOperatingHours(ctx context.Context, id uuid.UUID, openTime, closeTime *string) (*domain.Market, error) {
	if openTime == nil && closeTime == nil {
		return nil, domain.ErrInvalidRequest
	}
	opens, err := parseBound(openTime)
	if err != nil {
		return nil, err
	}
	closes, err := parseBound(closeTime)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	var market *domain.Market
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.markets.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return domain.ErrMarketNotFound
		}

		if opens == nil {
			opens = &current.OpenTime
		}
		if closes == nil {
			closes = &current.CloseTime
		}
		if *opens >= *closes {
			return domain.ErrInvalidWindow
		}

		market, err = s.markets.UpdateHours(ctx, id, *opens, *closes, now)
		return err
	})
	return s.finish(domain.ActionUpdateTimes, id, market, err, now)
}

// ResetAll runs ResetForNewDay for every market. Markets are reset
// independently; the first failure is returned after all have been tried.
func (s *Service) ResetAll(ctx context.Context) error {
	markets, err := s.markets.List(ctx)
	if err != nil {
		zap.L().Error("failed to list markets for reset", zap.Error(err))
		return err
	}

	var g errgroup.Group
	g.SetLimit(resetConcurrency)
	for _, market := range markets {
		id := market.ID
		g.Go(func() error {
			_, err := s.ResetForNewDay(ctx, id)
			return err
		})
	}
	return g.Wait()
}

// TodayWagers returns every wager created during the current market-zone
// calendar day with the total staked volume.
func (s *Service) TodayWagers(ctx context.Context) (*domain.DayView, error) {
	from, to := domain.DayBounds(s.clock())
	wagers, err := s.wagers.ListCreatedBetween(ctx, from, to)
	if err != nil {
		zap.L().Error("failed to get today's wagers", zap.Error(err))
		return nil, err
	}

	view := &domain.DayView{Wagers: wagers}
	for _, wager := range wagers {
		view.TotalVolume += wager.Amount
	}
	return view, nil
}

func (s *Service) finish(action domain.MarketAction, id uuid.UUID, market *domain.Market, err error, now time.Time) (*domain.Market, error) {
	metrics.MarketAction(string(action), err)
	if err != nil {
		zap.L().Info("market action failed",
			zap.String("action", string(action)),
			zap.String("market_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if market == nil {
		return nil, domain.ErrMarketNotFound
	}

	s.notifier.Notify(events.MarketUpdated(market, string(action), now))
	zap.L().Info("market updated",
		zap.String("action", string(action)),
		zap.String("market_id", id.String()),
		zap.Bool("is_active", market.IsActive),
	)
	return market, nil
}

func parseBound(raw *string) (*domain.TimeOfDay, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domain.ErrInvalidTimeOfDay
	}
	return &t, nil
}
