// Package importer turns uploaded stock sheets into inventory create params.
package importer

import (
	"io"

	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

type Format string

const (
	FormatCSV Format = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]inventory.CreateParams, error)
}
