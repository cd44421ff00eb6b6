package errors

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ErrorInfo is the classified form of a failure: a stable code plus a
// message safe to show the user.
type ErrorInfo struct {
	Code    string
	Message string
}

// PostgreSQL error classes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNotNullViolation    = "23502"
	pqCheckViolation      = "23514"
)

// ParseError classifies a database or service failure into a user-facing
// code and message. Sensitive detail stays in the logs, never in the
// returned message.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Code: InternalServerError, Message: "Something went wrong"}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{Code: ResourceNotFound, Message: notFoundMessage(context)}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return parsePQError(pqErr)
	}

	errStr := strings.ToLower(err.Error())

	// Driver-agnostic fallbacks for wrapped constraint errors
	if strings.Contains(errStr, "duplicate key") || strings.Contains(errStr, "unique constraint") {
		return parseDuplicateKey(errStr)
	}
	if strings.Contains(errStr, "foreign key constraint") {
		return ErrorInfo{Code: ResourceNotFound, Message: "Referenced record does not exist"}
	}

	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") {
		return ErrorInfo{
			Code:    InternalDatabaseError,
			Message: "The service is temporarily unavailable. Please try again shortly",
		}
	}

	return ErrorInfo{Code: InternalServerError, Message: "Something went wrong. Please try again"}
}

func parsePQError(pqErr *pq.Error) ErrorInfo {
	switch string(pqErr.Code) {
	case pqUniqueViolation:
		return parseDuplicateKey(strings.ToLower(pqErr.Constraint + " " + pqErr.Detail))
	case pqForeignKeyViolation:
		return ErrorInfo{Code: ResourceNotFound, Message: "Referenced record does not exist"}
	case pqNotNullViolation:
		return ErrorInfo{Code: ValidationRequired, Message: "A required field is missing"}
	case pqCheckViolation:
		if strings.Contains(strings.ToLower(pqErr.Constraint), "star") {
			return ErrorInfo{Code: ReviewInvalidRating, Message: "Rating must be between 1 and 5"}
		}
		return ErrorInfo{Code: ValidationInvalidInput, Message: "Invalid input"}
	}
	return ErrorInfo{Code: InternalDatabaseError, Message: "Something went wrong. Please try again"}
}

func parseDuplicateKey(errStr string) ErrorInfo {
	if strings.Contains(errStr, "email") {
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "This email address is already registered"}
	}
	if strings.Contains(errStr, "cart_items") {
		return ErrorInfo{Code: ResourceConflict, Message: "This book is already in the cart"}
	}
	if strings.Contains(errStr, "favorites") {
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "This book is already in your favorites"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "This record already exists"}
}

func notFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	if strings.Contains(contextLower, "book") {
		return "Book not found"
	}
	if strings.Contains(contextLower, "category") {
		return "Category not found"
	}
	if strings.Contains(contextLower, "order") {
		return "Order not found"
	}
	if strings.Contains(contextLower, "user") {
		return "No account found with this email address"
	}
	return "The requested record was not found"
}
