package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/wagerhall/docs"
	adminhandlers "github.com/GlebRadaev/wagerhall/internal/handlers/admin"
	gamehandlers "github.com/GlebRadaev/wagerhall/internal/handlers/games"
	markethandlers "github.com/GlebRadaev/wagerhall/internal/handlers/markets"
	streamhandlers "github.com/GlebRadaev/wagerhall/internal/handlers/stream"
	wagerhandlers "github.com/GlebRadaev/wagerhall/internal/handlers/wagers"
	wallethandlers "github.com/GlebRadaev/wagerhall/internal/handlers/wallet"
	"github.com/GlebRadaev/wagerhall/internal/metrics"
	"github.com/GlebRadaev/wagerhall/internal/service"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type MarketHandler interface {
	ListMarkets(w http.ResponseWriter, r *http.Request)
	GetMarket(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	Suggestions(w http.ResponseWriter, r *http.Request)
}

type WagerHandler interface {
	PlaceWager(w http.ResponseWriter, r *http.Request)
	GetWagers(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	UpdateMarket(w http.ResponseWriter, r *http.Request)
	TodayWagers(w http.ResponseWriter, r *http.Request)
}

type StreamHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
}

// Limiter throttles the routes it wraps.
type Limiter interface {
	Handler(next http.Handler) http.Handler
}

type Handlers struct {
	MarketHandler MarketHandler
	GameHandler   GameHandler
	WagerHandler  WagerHandler
	WalletHandler WalletHandler
	AdminHandler  AdminHandler
	StreamHandler StreamHandler

	jwtService auth.JWTServiceInterface
	limiter    Limiter
}

func New(s *service.Services, jwtService auth.JWTServiceInterface, limiter Limiter, hub streamhandlers.Hub) *Handlers {
	return &Handlers{
		MarketHandler: markethandlers.New(s.MarketService),
		GameHandler:   gamehandlers.New(),
		WagerHandler:  wagerhandlers.New(s.WagerService),
		WalletHandler: wallethandlers.New(s.WagerService),
		AdminHandler:  adminhandlers.New(s.MarketService),
		StreamHandler: streamhandlers.New(hub, jwtService),
		jwtService:    jwtService,
		limiter:       limiter,
	}
}

// AccountKey buckets rate limiting by the authenticated account.
func AccountKey(r *http.Request) string {
	if id, ok := auth.AccountID(r.Context()); ok {
		return id.String()
	}
	return ""
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.InstrumentHandler,
	)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/markets", h.MarketHandler.ListMarkets)
		r.Get("/markets/{id}", h.MarketHandler.GetMarket)
		r.Get("/games/{gameType}/suggestions", h.GameHandler.Suggestions)
		r.Get("/events", h.StreamHandler.Subscribe)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/wagers", func(r chi.Router) {
				r.With(h.limiter.Handler).Post("/", h.WagerHandler.PlaceWager)
				r.Get("/", h.WagerHandler.GetWagers)
			})
			r.Get("/wallet", h.WalletHandler.GetBalance)

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminOnly)
				r.Patch("/markets", h.AdminHandler.UpdateMarket)
				r.Get("/wagers/today", h.AdminHandler.TodayWagers)
			})
		})
	})

	return r
}
