package model

import "errors"

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

const (
	ErrInternalServerMessage     = "internal server error"
	ErrInvalidCredentialsMessage = "invalid email or password"
	ErrStoreUnavailableMessage   = "store unavailable"
	ErrOrderNotFoundMessage      = "order not found"
	ErrStationNotFoundMessage    = "station not found"
	ErrDuplicateFolioMessage     = "folio already exists"
	ErrInvalidRequestMessage     = "invalid request"
)

var (
	ErrInvalidCredentials = errors.New(ErrInvalidCredentialsMessage)
	ErrStoreUnavailable   = errors.New(ErrStoreUnavailableMessage)
	ErrOrderNotFound      = errors.New(ErrOrderNotFoundMessage)
	ErrStationNotFound    = errors.New(ErrStationNotFoundMessage)
	ErrDuplicateFolio     = errors.New(ErrDuplicateFolioMessage)
	ErrInvalidRequest     = errors.New(ErrInvalidRequestMessage)

	ErrLoadOrderNotFound = errors.New("load order not found")
)
