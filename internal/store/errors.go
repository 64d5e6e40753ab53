// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConflict reports that a write violated a unique constraint. Handlers
// run duplicate pre-checks before writing, but concurrent submissions can
// slip past them; the constraint is the authoritative guard and its
// violation maps to the same outcome as the pre-check.
var ErrConflict = errors.New("unique constraint violation")

// uniqueViolation is the PostgreSQL error code for unique_violation.
const uniqueViolation = "23505"

// wrapWriteErr translates unique-constraint failures into ErrConflict and
// wraps everything else with the operation name.
func wrapWriteErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrConflict)
	}
	return fmt.Errorf("%s: %w", op, err)
}
