// Package errmap classifies store and catalog errors for the HTTP layer.
package errmap

import (
	"errors"
	"net/http"

	"github.com/jackscave/service-desk/internal/catalog"
	"github.com/jackscave/service-desk/internal/repository"
	apperrors "github.com/jackscave/service-desk/pkg/util/errorutil"
)

// ToDomainError maps domain sentinels to their HTTP error and defers
// everything else to errorutil.
func ToDomainError(err error) *apperrors.DomainError {
	if err == nil {
		return nil
	}
	var domainErr *apperrors.DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	switch {
	case errors.Is(err, repository.ErrTicketNotFound):
		return &apperrors.DomainError{Code: "NOT_FOUND", Message: "ticket not found", HTTPStatus: http.StatusNotFound, Err: err}
	case errors.Is(err, repository.ErrInvalidTicket),
		errors.Is(err, repository.ErrInvalidStatus),
		errors.Is(err, catalog.ErrUnknownPriority):
		return &apperrors.DomainError{Code: "VALIDATION_FAILED", Message: err.Error(), HTTPStatus: http.StatusBadRequest, Err: err}
	}
	return apperrors.ToDomainError(err)
}
