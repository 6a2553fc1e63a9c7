package dbx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// sqlStateSerializationFailure is PostgreSQL's serialization_failure code.
const sqlStateSerializationFailure = "40001"

// Serializable is the TxOptions value used by RetrySerializable.
var Serializable = &sql.TxOptions{Isolation: sql.LevelSerializable}

// IsSerializationFailure reports whether err (or anything it wraps) is a
// PostgreSQL serialization failure.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == sqlStateSerializationFailure
}

// RetrySerializable runs fn in a SERIALIZABLE transaction and re-runs it while
// the commit or any statement fails with a serialization failure, at most
// attempts times in total. The last error is returned.
func RetrySerializable(ctx context.Context, db *sql.DB, attempts int, fn func(ctx context.Context, tx DBTX) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		err = WithTx(ctx, db, Serializable, fn)
		if err == nil || !IsSerializationFailure(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
	}
	return err
}
