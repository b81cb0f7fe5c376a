package stream

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/internal/handlers/httperr"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
)

//go:generate mockgen -source=stream.go -destination=mock_stream.go -package=stream

type Hub interface {
	Serve(w http.ResponseWriter, r *http.Request, accountID uuid.UUID) error
}

type StreamHandler struct {
	hub        Hub
	jwtService auth.JWTServiceInterface
}

func New(hub Hub, jwtService auth.JWTServiceInterface) *StreamHandler {
	return &StreamHandler{
		hub:        hub,
		jwtService: jwtService,
	}
}

// Subscribe godoc
//
//	@Summary		Live events
//	@Description	WebSocket stream of market.updated and market.settled events. With a bearer token (header or access_token query parameter) the caller's balance.updated events are included.
//	@Tags			Events
//	@Param			access_token	query	string	false	"Bearer token"
//	@Success		101
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Router			/api/events [get]
func (h *StreamHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	accountID := uuid.Nil
	if token := bearerToken(r); token != "" {
		claims, err := h.jwtService.ValidateToken(token)
		if err != nil {
			httperr.Respond(w, domain.ErrUnauthorized)
			return
		}
		if accountID, err = uuid.Parse(claims.AccountID); err != nil {
			httperr.Respond(w, domain.ErrUnauthorized)
			return
		}
	}

	if err := h.hub.Serve(w, r, accountID); err != nil {
		zap.L().Debug("event stream ended", zap.Error(err))
	}
}

func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}
