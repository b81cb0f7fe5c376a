package service

import (
	"time"

	"github.com/GlebRadaev/wagerhall/internal/events"
	"github.com/GlebRadaev/wagerhall/internal/pg"
	"github.com/GlebRadaev/wagerhall/internal/repo"
	"github.com/GlebRadaev/wagerhall/internal/service/marketservice"
	"github.com/GlebRadaev/wagerhall/internal/service/wagerservice"
)

type Notifier interface {
	Notify(event events.Event)
}

type Services struct {
	MarketService *marketservice.Service
	WagerService  *wagerservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier Notifier, loc *time.Location) *Services {
	return &Services{
		MarketService: marketservice.New(txManager, repo.MarketRepo, repo.WagerRepo, notifier, loc),
		WagerService:  wagerservice.New(txManager, repo.MarketRepo, repo.WalletRepo, repo.WagerRepo, notifier, loc),
	}
}
