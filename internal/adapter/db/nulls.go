package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/mattn/go-sqlite3"
)

const mysqlDuplicateEntry = 1062

func nullStringPtr(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullTimePtr(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: value.UTC(), Valid: true}
}

func nullIDPtr(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func stringPtr(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	s := value.String
	return &s
}

func timePtr(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	t := value.Time.UTC()
	return &t
}

func idPtr(value sql.NullInt64) *uint64 {
	if !value.Valid {
		return nil
	}
	id := uint64(value.Int64)
	return &id
}

// paginate appends LIMIT/OFFSET. A non-positive limit means no limit.
func paginate(query string, args []any, skip, limit int) (string, []any) {
	if limit <= 0 {
		if skip > 0 {
			// Both dialects need a LIMIT before OFFSET.
			return query + "LIMIT 9223372036854775807 OFFSET ?", append(args, skip)
		}
		return query, args
	}
	return query + "LIMIT ? OFFSET ?", append(args, limit, max(skip, 0))
}

// expectAffected turns an update or delete that touched no row into notFound.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

// isDuplicateKey reports whether err is a unique key violation on either driver.
func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDuplicateEntry
	}
	return false
}
