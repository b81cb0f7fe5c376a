package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

const (
	balanceQuery = `SELECT balance FROM accounts WHERE id = $1`
	debitQuery   = `UPDATE accounts SET balance = balance - $2 WHERE id = $1 AND balance >= $2 RETURNING balance`
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetBalance(t *testing.T) {
	repo, mock := NewMock(t)
	accountID := uuid.New()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		result    int64
	}{
		{
			name: "Returns balance",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(accountID).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(1000)))
			},
			result: 1000,
		},
		{
			name: "Unknown account",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(accountID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrAccountNotFound,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(accountID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetBalance(context.Background(), accountID)

			switch {
			case tt.expectErr == nil:
				assert.NoError(t, err)
			case errors.Is(tt.expectErr, domain.ErrAccountNotFound):
				assert.ErrorIs(t, err, domain.ErrAccountNotFound)
			default:
				assert.EqualError(t, err, tt.expectErr.Error())
			}
			assert.Equal(t, tt.result, result)
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestRepository_Debit(t *testing.T) {
	repo, mock := NewMock(t)
	accountID := uuid.New()

	tests := []struct {
		name      string
		amount    int64
		mockSetup func()
		expectErr error
		result    int64
	}{
		{
			name:   "Debits when funds suffice",
			amount: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(accountID, int64(100)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(900)))
			},
			result: 900,
		},
		{
			name:   "Debits the whole balance down to zero",
			amount: 900,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(accountID, int64(900)).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(0)))
			},
			result: 0,
		},
		{
			name:   "Insufficient balance",
			amount: 1000,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(accountID, int64(1000)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(accountID).
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(50)))
			},
			expectErr: domain.ErrInsufficientBalance,
		},
		{
			name:   "Unknown account",
			amount: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(accountID, int64(10)).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectQuery(regexp.QuoteMeta(balanceQuery)).
					WithArgs(accountID).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: domain.ErrAccountNotFound,
		},
		{
			name:   "Connection failure is transient",
			amount: 10,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(debitQuery)).
					WithArgs(accountID, int64(10)).
					WillReturnError(context.DeadlineExceeded)
			},
			expectErr: domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Debit(context.Background(), accountID, tt.amount)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

// The debit must be a single conditional statement: the balance check and the
// write happen on the row the database locks, so concurrent debits cannot
// both pass the check.
func TestRepository_DebitGuard(t *testing.T) {
	mockDB, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()
	repo := New(mockDB)
	accountID := uuid.New()

	mockDB.ExpectQuery(debitQuery).
		WithArgs(accountID, int64(1000)).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(0)))
	mockDB.ExpectQuery(debitQuery).
		WithArgs(accountID, int64(1000)).
		WillReturnError(pgx.ErrNoRows)
	mockDB.ExpectQuery(balanceQuery).
		WithArgs(accountID).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(int64(0)))

	balance, err := repo.Debit(context.Background(), accountID, 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)

	_, err = repo.Debit(context.Background(), accountID, 1000)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}
