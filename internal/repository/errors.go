package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Unique index names created from the model tags
const (
	ProductNameIndex   = "idx_products_name"
	DishNameIndex      = "idx_dishes_name"
	MealGroupNameIndex = "idx_meal_groups_name"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique violation on the given index.
// An empty index matches any unique violation.
func IsUniqueViolation(err error, index string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != uniqueViolation {
		return false
	}
	return index == "" || pgErr.ConstraintName == index
}
