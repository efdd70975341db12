// Package page holds the offset/count pagination shared by every list operation.
package page

import (
	"strconv"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
)

const DefaultLimit = 100

type Page struct {
	Skip  int
	Limit int
}

func Default() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

func (p Page) Validate() error {
	var fields []apperr.FieldError

	if p.Skip < 0 {
		fields = append(fields, apperr.FieldError{Field: "skip", Message: "must be greater than or equal to 0"})
	}

	if p.Limit < 0 {
		fields = append(fields, apperr.FieldError{Field: "limit", Message: "must be greater than or equal to 0"})
	}

	if len(fields) > 0 {
		return &apperr.ValidationError{Fields: fields}
	}

	return nil
}

// Parse reads skip and limit from query values. Missing values fall back to the defaults.
func Parse(skip, limit string) (Page, error) {
	p := Default()

	if skip != "" {
		n, err := strconv.Atoi(skip)
		if err != nil {
			return p, apperr.Invalid("skip", "must be an integer")
		}

		p.Skip = n
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return p, apperr.Invalid("limit", "must be an integer")
		}

		p.Limit = n
	}

	return p, p.Validate()
}
