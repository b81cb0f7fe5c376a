package pg

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/GlebRadaev/wagerhall/internal/domain"
)

const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	classConnectionException = "08"
	codeAdminShutdown        = "57P01"
	codeCannotConnectNow     = "57P03"
)

// Classify marks infrastructure failures as domain.ErrTransientStore so
// callers know the request may be retried. Other errors pass through.
func Classify(err error) error {
	if err == nil || !IsTransient(err) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
}

func IsTransient(err error) bool {
	if errors.Is(err, domain.ErrTransientStore) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.SafeToRetry(err) || pgconn.Timeout(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeSerializationFailure, codeDeadlockDetected, codeAdminShutdown, codeCannotConnectNow:
			return true
		}
		return len(pgErr.Code) >= 2 && pgErr.Code[:2] == classConnectionException
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
