package repo

import (
	"github.com/GlebRadaev/wagerhall/internal/pg"
	marketrepo "github.com/GlebRadaev/wagerhall/internal/repo/market-repo"
	wagerrepo "github.com/GlebRadaev/wagerhall/internal/repo/wager-repo"
	walletrepo "github.com/GlebRadaev/wagerhall/internal/repo/wallet-repo"
)

type Repositories struct {
	MarketRepo *marketrepo.Repository
	WalletRepo *walletrepo.Repository
	WagerRepo  *wagerrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		MarketRepo: marketrepo.New(conn),
		WalletRepo: walletrepo.New(conn),
		WagerRepo:  wagerrepo.New(conn),
	}
}
