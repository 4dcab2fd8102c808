package services

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/javiermalaquita9-svg/finanzas-app/internal/errs"
)

// mapNotFound converts a Firestore not-found status into the domain error so
// handlers answer 404 instead of 500. Other errors pass through unchanged.
func mapNotFound(err error, message string) error {
	if status.Code(err) == codes.NotFound {
		return errs.NewNotFoundError(message)
	}
	return err
}
