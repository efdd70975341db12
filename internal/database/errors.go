package database

import (
	"database/sql"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// missingParent matches the detail Postgres reports when an insert or update names a
// parent row that does not exist.
var missingParent = regexp.MustCompile(`^Key \((\w+)_id\)=\((-?\d+)\) is not present in table`)

// Classify maps a driver error onto the application error taxonomy. Errors that
// already belong to the taxonomy pass through untouched.
func Classify(entity, op string, id int64, err error) error {
	if err == nil {
		return nil
	}

	if apperr.IsNotFound(err) || apperr.IsConflict(err) || apperr.IsValidation(err) {
		return err
	}

	var persistence *apperr.PersistenceError
	if errors.As(err, &persistence) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &apperr.NotFoundError{Entity: entity, ID: id}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return &apperr.ConflictError{Entity: entity, Constraint: pgErr.ConstraintName}
		case codeForeignKeyViolation:
			if nf := missingReference(pgErr); nf != nil {
				return nf
			}

			return &apperr.ConflictError{Entity: entity, Constraint: pgErr.ConstraintName}
		}
	}

	return &apperr.PersistenceError{Op: op, Err: err}
}

// missingReference reports the absent parent of a foreign-key violation, or nil when
// the violation is a parent that is still referenced.
func missingReference(pgErr *pgconn.PgError) *apperr.NotFoundError {
	m := missingParent.FindStringSubmatch(pgErr.Detail)
	if m == nil {
		return nil
	}

	id, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return nil
	}

	return &apperr.NotFoundError{Entity: strings.ReplaceAll(m[1], "_", " "), ID: id}
}
