package usecase

import "errors"

var (
	ErrEmptyDocument      = errors.New("empty document")
	ErrUnsupportedFile    = errors.New("unsupported file")
	ErrAnalysisNotFound   = errors.New("analysis not found")
	ErrHistoryUnavailable = errors.New("history unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)
