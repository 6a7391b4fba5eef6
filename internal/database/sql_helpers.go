package database

import (
	"database/sql"

	"github.com/akyairhashvil/pomotask/internal/util"
)

// nullableInt64 converts an optional id to sql.NullInt64.
func nullableInt64(v *int64) sql.NullInt64 {
	return sql.NullInt64{Int64: util.Deref(v), Valid: v != nil}
}

// int64Ptr maps a NULL column back to a nil pointer.
func int64Ptr(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return util.Ptr(v.Int64)
}

// requireRow returns ErrNotFound when an update or delete matched nothing.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
