package infra

import (
	"errors"
	"log/slog"

	"minutes-recharge/internal/pkg/errs"
)

type ErrorKind string

// Error is returned by every adapter in infra: repositories, the session
// store, and outbound HTTP clients.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(logger *slog.Logger, kind ErrorKind, msg string, err error) error {
	if logger == nil {
		logger = slog.Default()
	}
	logArgs := []any{
		slog.String("kind", string(kind)),
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindNotFound {
		logger.Debug("Infra error: "+msg, logArgs...)
	} else {
		logger.Error("Infra error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

const (
	KindNotFound     ErrorKind = "NOT_FOUND"
	KindDBFailure    ErrorKind = "DB_FAILURE"
	KindDuplicateKey ErrorKind = "DUPLICATE_KEY"
	KindCacheFailure ErrorKind = "CACHE_FAILURE"
	KindUpstream     ErrorKind = "UPSTREAM_FAILURE"
	KindBadResponse  ErrorKind = "BAD_RESPONSE"
	KindPublish      ErrorKind = "PUBLISH_FAILURE"
)
