package apperrors

import "errors"

var (
	ErrConferenceNotFound  = errors.New("conference not found")
	ErrTicketNotFound      = errors.New("ticket not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPurchaseNotFound    = errors.New("ticket purchase not found")
	ErrPurchaseInProgress  = errors.New("another purchase for this user is in progress")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternalServerError = errors.New("internal server error")
)
