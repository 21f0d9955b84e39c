package errors

// Mapping for the two stores the batch job talks to: Postgres is read, ClickHouse is written

import (
	"context"
	stderrs "errors"
	"fmt"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE values the reader cares about
const (
	pgUndefinedTable       = "42P01"
	pgUndefinedColumn      = "42703"
	pgInvalidText          = "22P02"
	pgSerializationFailure = "40001"
	pgDeadlock             = "40P01"
	pgLockNotAvailable     = "55P03"
	pgQueryCanceled        = "57014"
	pgAdminShutdown        = "57P01"
	pgCannotConnectNow     = "57P03"
	pgReadOnly             = "25006"
)

// ClickHouse server error codes
const (
	chUnknownTable        int32 = 60
	chUnknownDatabase     int32 = 81
	chTimeoutExceeded     int32 = 159
	chSocketTimeout       int32 = 209
	chNetworkError        int32 = 210
	chTooManyQueries      int32 = 202
	chMemoryLimitExceeded int32 = 241
	chTooManyParts        int32 = 252
)

// PgError returns the *pgconn.PgError behind err, if any
func PgError(err error) (*pgconn.PgError, bool) {
	var pe *pgconn.PgError
	if stderrs.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// ClickHouseError returns the server exception behind err, if any
func ClickHouseError(err error) (*clickhouse.Exception, bool) {
	var ce *clickhouse.Exception
	if stderrs.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// IsSQLState reports whether err is a Postgres error with the given SQLSTATE
func IsSQLState(err error, state string) bool {
	pe, ok := PgError(err)
	return ok && pe.Code == state
}

// DBErrorCode classifies a Postgres error; ok is false for anything else
func DBErrorCode(err error) (ErrorCode, bool) {
	pe, ok := PgError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch {
	case pe.Code == pgUndefinedTable, pe.Code == pgUndefinedColumn:
		return ErrorCodeNotFound, true
	case pe.Code == pgInvalidText:
		return ErrorCodeInvalidArgument, true
	case pe.Code == pgReadOnly, pe.Code == pgCannotConnectNow, pe.Code == pgAdminShutdown,
		strings.HasPrefix(pe.Code, "08"):
		return ErrorCodeUnavailable, true
	}
	return ErrorCodeDB, true
}

// WarehouseErrorCode classifies a ClickHouse exception; ok is false for anything else
func WarehouseErrorCode(err error) (ErrorCode, bool) {
	ce, ok := ClickHouseError(err)
	if !ok {
		return ErrorCodeUnknown, false
	}
	switch ce.Code {
	case chUnknownTable, chUnknownDatabase:
		return ErrorCodeNotFound, true
	case chTimeoutExceeded, chSocketTimeout, chNetworkError:
		return ErrorCodeUnavailable, true
	case chTooManyQueries:
		return ErrorCodeTooManyRequests, true
	}
	return ErrorCodeWarehouse, true
}

// FromPostgres wraps a Postgres failure under its mapped code; nil stays nil
func FromPostgres(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := DBErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromPostgresf is FromPostgres with a formatted message
func FromPostgresf(err error, format string, a ...any) error {
	return FromPostgres(err, fmt.Sprintf(format, a...))
}

// FromClickHouse wraps a ClickHouse failure under its mapped code; nil stays nil
func FromClickHouse(err error, msg string) error {
	if err == nil {
		return nil
	}
	if code, ok := WarehouseErrorCode(err); ok {
		return Wrap(err, code, msg)
	}
	return Wrap(err, ErrorCodeWarehouse, msg)
}

// FromClickHousef is FromClickHouse with a formatted message
func FromClickHousef(err error, format string, a ...any) error {
	return FromClickHouse(err, fmt.Sprintf(format, a...))
}

// IsRetryable reports whether a store error is transient
// Context cancellation never is; the caller owns that decision
func IsRetryable(err error) bool {
	if err == nil || stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	if pe, ok := PgError(err); ok {
		switch pe.Code {
		case pgSerializationFailure, pgDeadlock, pgLockNotAvailable, pgCannotConnectNow, pgAdminShutdown:
			return true
		}
		return strings.HasPrefix(pe.Code, "08")
	}
	if ce, ok := ClickHouseError(err); ok {
		switch ce.Code {
		case chTimeoutExceeded, chSocketTimeout, chNetworkError, chTooManyQueries,
			chMemoryLimitExceeded, chTooManyParts:
			return true
		}
		return false
	}

	s := strings.ToLower(Root(err).Error())
	for _, frag := range []string{
		"connection reset by peer",
		"broken pipe",
		"i/o timeout",
		"conn closed",
		"canceling statement due to statement timeout",
	} {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}
