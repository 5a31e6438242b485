package postgres

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
)

// Builder returns a squirrel statement builder using $n placeholders.
func Builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// Get builds q, runs it and scans a single row into dst.
// pgx.ErrNoRows is returned unchanged so callers can map it with MapError.
func Get(ctx context.Context, db Querier, dst any, q sq.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Get(ctx, db, dst, sql, args...)
}

// Select builds q, runs it and scans all rows into dst, a pointer to a slice.
func Select(ctx context.Context, db Querier, dst any, q sq.Sqlizer) error {
	sql, args, err := q.ToSql()
	if err != nil {
		return err
	}
	return pgxscan.Select(ctx, db, dst, sql, args...)
}
