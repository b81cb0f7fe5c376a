// Package httperr renders domain errors as HTTP responses.
package httperr

import (
	"errors"
	"net/http"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/pkg/utils"
)

const retryAfterSeconds = "1"

var statusByKind = map[domain.Kind]int{
	domain.KindUnauthorized:        http.StatusUnauthorized,
	domain.KindForbidden:           http.StatusForbidden,
	domain.KindInvalidInput:        http.StatusUnprocessableEntity,
	domain.KindNotFound:            http.StatusNotFound,
	domain.KindStateConflict:       http.StatusConflict,
	domain.KindInsufficientBalance: http.StatusPaymentRequired,
	domain.KindTransient:           http.StatusServiceUnavailable,
}

func Status(err error) int {
	if status, ok := statusByKind[domain.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Respond writes err. Errors outside the domain taxonomy become a bare 500
// so driver details never reach the caller.
func Respond(w http.ResponseWriter, err error) {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		utils.RespondWithErrorCode(w, http.StatusInternalServerError, string(domain.KindInternal), "internal server error")
		return
	}
	if domainErr.Retryable() {
		w.Header().Set("Retry-After", retryAfterSeconds)
	}
	utils.RespondWithErrorCode(w, Status(err), domainErr.Code, domainErr.Message)
}
