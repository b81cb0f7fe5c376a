package domain

import (
	"time"

	"github.com/google/uuid"
)

type GameType string

const (
	SingleDigit GameType = "single_digit"
	Jodi        GameType = "jodi"
	SinglePanna GameType = "single_panna"
	DoublePanna GameType = "double_panna"
	TriplePanna GameType = "triple_panna"
)

// IsPanna reports whether numbers of this game type are stored in canonical form.
func (g GameType) IsPanna() bool {
	return g == SinglePanna || g == DoublePanna || g == TriplePanna
}

func (g GameType) Valid() bool {
	switch g {
	case SingleDigit, Jodi, SinglePanna, DoublePanna, TriplePanna:
		return true
	}
	return false
}

type WagerStatus string

const (
	WagerPending WagerStatus = "pending"
	WagerWon     WagerStatus = "won"
	WagerLost    WagerStatus = "lost"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	ID        uuid.UUID `db:"id"`
	Balance   int64     `db:"balance"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

type Market struct {
	ID                 uuid.UUID `db:"id"`
	Name               string    `db:"name"`
	OpenTime           TimeOfDay `db:"open_time"`
	CloseTime          TimeOfDay `db:"close_time"`
	IsActive           bool      `db:"is_active"`
	TodayWinningNumber *string   `db:"today_winning_number"`
	UpdatedAt          time.Time `db:"updated_at"`
}

// InWindow reports whether t falls into [OpenTime, CloseTime).
func (m *Market) InWindow(t time.Time) bool {
	now := TimeOfDayOf(t)
	return now >= m.OpenTime && now < m.CloseTime
}

// AcceptsWagersAt is the placement gate: active and inside the window.
func (m *Market) AcceptsWagersAt(t time.Time) bool {
	return m.IsActive && m.InWindow(t)
}

// Settled reports whether a result was declared for the current cycle.
func (m *Market) Settled() bool {
	return !m.IsActive && m.TodayWinningNumber != nil
}

// MarketView is a market together with its placement state at one instant.
type MarketView struct {
	Market
	IsOpen   bool
	ClosesIn time.Duration
}

func (m *Market) ViewAt(t time.Time) MarketView {
	view := MarketView{Market: *m, IsOpen: m.AcceptsWagersAt(t)}
	if view.IsOpen {
		view.ClosesIn = m.CloseTime.Until(t)
	}
	return view
}

type MarketAction string

const (
	ActionToggleStatus  MarketAction = "toggle_status"
	ActionDeclareResult MarketAction = "declare_result"
	ActionUpdateTimes   MarketAction = "update_times"
	ActionDailyReset    MarketAction = "daily_reset"
)

type Wager struct {
	ID         uuid.UUID   `db:"id"`
	AccountID  uuid.UUID   `db:"account_id"`
	MarketID   uuid.UUID   `db:"market_id"`
	MarketName string      `db:"market_name"`
	GameType   GameType    `db:"game_type"`
	Number     string      `db:"number"`
	Amount     int64       `db:"amount"`
	Status     WagerStatus `db:"status"`
	CreatedAt  time.Time   `db:"created_at"`
	SettledAt  *time.Time  `db:"settled_at"`
}

// Settlement summarises one declareResult run.
type Settlement struct {
	MarketID      uuid.UUID
	WinningNumber string
	SettledAt     time.Time
	Lost          int64
	Won           int64
}

// DayView is every wager placed on one calendar day, newest first.
type DayView struct {
	Wagers      []Wager
	TotalVolume int64
}

// DayBounds returns the [start, end) of the calendar day containing t in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 0, 1)
}
