package importer

import (
	"io"
	"slices"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
	"github.com/MrJamesThe3rd/ledger/internal/importer/stockcsv"
	"github.com/MrJamesThe3rd/ledger/internal/inventory"
)

type Service struct {
	importers map[Format]Importer
}

func NewService() *Service {
	return &Service{
		importers: map[Format]Importer{
			FormatCSV: stockcsv.NewParser(),
		},
	}
}

// Parse reads r in the given format. An empty format means CSV.
func (s *Service) Parse(format Format, r io.Reader) ([]inventory.CreateParams, error) {
	if format == "" {
		format = FormatCSV
	}

	importer, ok := s.importers[format]
	if !ok {
		return nil, apperr.Invalid("format", "unknown import format: "+string(format))
	}

	return importer.Parse(r)
}

// Formats lists the supported formats in name order.
func (s *Service) Formats() []Format {
	formats := make([]Format, 0, len(s.importers))
	for f := range s.importers {
		formats = append(formats, f)
	}

	slices.Sort(formats)

	return formats
}
