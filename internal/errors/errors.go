package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserAlreadyExists is returned when registering a duplicate email.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrPortfolioNotFound is returned when no portfolio record exists for a user.
	ErrPortfolioNotFound = errors.New("portfolio not found")
	// ErrDuplicateSymbol is returned when adding a holding whose ticker is already held.
	ErrDuplicateSymbol = errors.New("symbol already in portfolio")
	// ErrNegativeAmount is returned when a cash update carries a negative amount.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrInvalidAmount is returned when an amount fails validation.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrSymbolNotFound is returned when a ticker has no market data.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrVersionConflict is returned when a save carries a stale portfolio version.
	ErrVersionConflict = errors.New("portfolio was modified by another session")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrUserAlreadyExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrPortfolioNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PORTFOLIO_NOT_FOUND")
	case ErrDuplicateSymbol:
		return NewHTTPError(http.StatusConflict, err.Error(), "DUPLICATE_SYMBOL")
	case ErrNegativeAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NEGATIVE_AMOUNT")
	case ErrInvalidAmount:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_AMOUNT")
	case ErrSymbolNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "SYMBOL_NOT_FOUND")
	case ErrVersionConflict:
		return NewHTTPError(http.StatusConflict, err.Error(), "VERSION_CONFLICT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
