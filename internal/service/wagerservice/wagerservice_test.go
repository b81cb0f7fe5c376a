package wagerservice

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/events"
	"github.com/GlebRadaev/wagerhall/internal/pg"
)

type mocks struct {
	txManager *pg.MockTXManager
	markets   *MockMarketRepo
	wallet    *MockWalletRepo
	wagers    *MockWagerRepo
	notifier  *MockNotifier
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		txManager: pg.NewMockTXManager(ctrl),
		markets:   NewMockMarketRepo(ctrl),
		wallet:    NewMockWalletRepo(ctrl),
		wagers:    NewMockWagerRepo(ctrl),
		notifier:  NewMockNotifier(ctrl),
	}
	service := New(m.txManager, m.markets, m.wallet, m.wagers, m.notifier, time.UTC)
	return service, m
}

func at(h, min int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, 10, 18, h, min, 0, 0, time.UTC)
	}
}

func passThroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestPlaceWager(t *testing.T) {
	accountID := uuid.New()
	marketID := uuid.New()
	kalyan := &domain.Market{
		ID:        marketID,
		Name:      "Kalyan",
		OpenTime:  domain.NewTimeOfDay(9, 0, 0),
		CloseTime: domain.NewTimeOfDay(21, 0, 0),
		IsActive:  true,
	}
	closed := *kalyan
	closed.IsActive = false

	tests := []struct {
		name          string
		req           PlaceWagerRequest
		now           func() time.Time
		prepareMock   func(m *mocks)
		expectedError error
		expected      *PlaceWagerResult
	}{
		{
			name: "Accepted inside operating hours",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 100},
			now:  at(14, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(kalyan, nil)
				m.wallet.EXPECT().Debit(gomock.Any(), accountID, int64(100)).Return(int64(900), nil)
				m.wagers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any()).Do(func(event events.Event) {
					assert.Equal(t, events.TypeBalanceUpdated, event.Type)
					assert.Equal(t, events.BalancePayload{AccountID: accountID, Balance: 900}, event.Payload)
				})
			},
			expected: &PlaceWagerResult{
				Wager: &domain.Wager{
					AccountID:  accountID,
					MarketID:   marketID,
					MarketName: "Kalyan",
					GameType:   domain.SingleDigit,
					Number:     "5",
					Amount:     100,
					Status:     domain.WagerPending,
					CreatedAt:  at(14, 0)(),
				},
				NewBalance: 900,
			},
		},
		{
			name: "Panna is stored canonical",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SinglePanna, Number: "821", Amount: 50},
			now:  at(9, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(kalyan, nil)
				m.wallet.EXPECT().Debit(gomock.Any(), accountID, int64(50)).Return(int64(950), nil)
				m.wagers.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w *domain.Wager) error {
					assert.Equal(t, "128", w.Number)
					return nil
				})
				m.notifier.EXPECT().Notify(gomock.Any())
			},
			expected: &PlaceWagerResult{
				Wager: &domain.Wager{
					AccountID:  accountID,
					MarketID:   marketID,
					MarketName: "Kalyan",
					GameType:   domain.SinglePanna,
					Number:     "128",
					Amount:     50,
					Status:     domain.WagerPending,
					CreatedAt:  at(9, 0)(),
				},
				NewBalance: 950,
			},
		},
		{
			name:          "Zero stake is rejected before any store access",
			req:           PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 0},
			now:           at(14, 0),
			expectedError: domain.ErrInvalidStake,
		},
		{
			name:          "Malformed number is rejected before any store access",
			req:           PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.Jodi, Number: "5", Amount: 10},
			now:           at(14, 0),
			expectedError: domain.ErrInvalidNumberFormat,
		},
		{
			name: "Unknown market",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 10},
			now:  at(14, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(nil, nil)
			},
			expectedError: domain.ErrMarketNotFound,
		},
		{
			name: "Inactive market",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 10},
			now:  at(14, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(&closed, nil)
			},
			expectedError: domain.ErrMarketClosed,
		},
		{
			name: "After closing time",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 100},
			now:  at(22, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(kalyan, nil)
			},
			expectedError: domain.ErrMarketOutsideHours,
		},
		{
			name: "Exactly at closing time",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 100},
			now:  at(21, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(kalyan, nil)
			},
			expectedError: domain.ErrMarketOutsideHours,
		},
		{
			name: "Insufficient balance writes nothing",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 1000},
			now:  at(14, 0),
			prepareMock: func(m *mocks) {
				passThroughTx(m)
				m.markets.EXPECT().GetForShare(gomock.Any(), marketID).Return(kalyan, nil)
				m.wallet.EXPECT().Debit(gomock.Any(), accountID, int64(1000)).Return(int64(0), domain.ErrInsufficientBalance)
			},
			expectedError: domain.ErrInsufficientBalance,
		},
		{
			name: "Transient store failure is surfaced as retryable",
			req:  PlaceWagerRequest{AccountID: accountID, MarketID: marketID, GameType: domain.SingleDigit, Number: "5", Amount: 10},
			now:  at(14, 0),
			prepareMock: func(m *mocks) {
				m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(domain.ErrTransientStore)
			},
			expectedError: domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			service.now = tt.now
			if tt.prepareMock != nil {
				tt.prepareMock(m)
			}

			result, err := service.PlaceWager(context.Background(), tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, result.Wager.ID)
			tt.expected.Wager.ID = result.Wager.ID
			assert.Equal(t, tt.expected, result)
		})
	}
}

// fakeWallet serializes debits the way the conditional UPDATE does in the
// database.
type fakeWallet struct {
	mu      sync.Mutex
	balance int64
}

func (w *fakeWallet) GetBalance(context.Context, uuid.UUID) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance, nil
}

func (w *fakeWallet) Debit(_ context.Context, _ uuid.UUID, amount int64) (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.balance < amount {
		return 0, domain.ErrInsufficientBalance
	}
	w.balance -= amount
	return w.balance, nil
}

// The fake wallet serializes debits the way the conditional UPDATE in
// walletrepo does; this checks that the service maps the losing debit to
// ErrInsufficientBalance and records nothing for it. The SQL guard itself is
// covered by TestRepository_DebitGuard in walletrepo.
func TestPlaceWager_ConcurrentDebitsLoserIsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	txManager := pg.NewMockTXManager(ctrl)
	markets := NewMockMarketRepo(ctrl)
	wagers := NewMockWagerRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	wallet := &fakeWallet{balance: 1000}

	market := &domain.Market{
		ID:        uuid.New(),
		OpenTime:  domain.NewTimeOfDay(0, 0, 0),
		CloseTime: domain.NewTimeOfDay(23, 59, 59),
		IsActive:  true,
	}

	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) }).
		Times(2)
	markets.EXPECT().GetForShare(gomock.Any(), market.ID).Return(market, nil).Times(2)
	wagers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	notifier.EXPECT().Notify(gomock.Any()).Times(1)

	service := New(txManager, markets, wallet, wagers, notifier, time.UTC)
	service.now = at(12, 0)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = service.PlaceWager(context.Background(), PlaceWagerRequest{
				AccountID: uuid.New(),
				MarketID:  market.ID,
				GameType:  domain.SingleDigit,
				Number:    "7",
				Amount:    1000,
			})
		}(i)
	}
	wg.Wait()

	var failed int
	for _, err := range errs {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
			failed++
		}
	}
	assert.Equal(t, 1, failed)
	assert.Equal(t, int64(0), wallet.balance)
}

func TestGetBalance(t *testing.T) {
	accountID := uuid.New()
	tests := []struct {
		name            string
		prepareMock     func(m *mocks)
		expectedBalance int64
		expectedError   error
	}{
		{
			name: "Retrieve balance successfully",
			prepareMock: func(m *mocks) {
				m.wallet.EXPECT().GetBalance(gomock.Any(), accountID).Return(int64(1000), nil)
			},
			expectedBalance: 1000,
		},
		{
			name: "Error retrieving balance",
			prepareMock: func(m *mocks) {
				m.wallet.EXPECT().GetBalance(gomock.Any(), accountID).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			balance, err := service.GetBalance(context.Background(), accountID)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestGetWagers(t *testing.T) {
	service, m := NewMock(t)
	accountID := uuid.New()
	expected := []domain.Wager{{ID: uuid.New(), AccountID: accountID, Number: "42", GameType: domain.Jodi}}

	m.wagers.EXPECT().ListByAccount(gomock.Any(), accountID, historyLimit).Return(expected, nil)

	wagers, err := service.GetWagers(context.Background(), accountID)
	assert.NoError(t, err)
	assert.Equal(t, expected, wagers)
}
