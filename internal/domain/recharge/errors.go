package recharge

import "minutes-recharge/internal/pkg/errs"

var (
	ErrInvalidArgument       = errs.New("invalid argument")
	ErrInvalidCurrency       = errs.New("invalid currency")
	ErrMisconfiguredProvider = errs.New("payment provider is not configured")
	ErrSignatureUnavailable  = errs.New("integrity signature unavailable")
)
