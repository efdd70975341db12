package stockcsv

import "strings"

// Profile describes the header names of one stock sheet layout.
// Adding a layout is just adding a Profile to the profiles slice.
type Profile struct {
	Name string

	// Required columns.
	NameCol     string
	CategoryCol string
	SKUCol      string
	QuantityCol string
	UnitCol     string
	PriceCol    string

	// Optional columns.
	DescCol     string
	LocationCol string
	MinStockCol string
}

func (p Profile) requiredCols() []string {
	return []string{p.NameCol, p.CategoryCol, p.SKUCol, p.QuantityCol, p.UnitCol, p.PriceCol}
}

// profiles is tried in order during header detection.
var profiles = []Profile{
	{
		Name:        "export",
		NameCol:     "name",
		CategoryCol: "category",
		SKUCol:      "sku",
		QuantityCol: "quantity",
		UnitCol:     "unit",
		PriceCol:    "unit_price",
		DescCol:     "description",
		LocationCol: "location",
		MinStockCol: "minimum_stock",
	},
	{
		Name:        "spreadsheet",
		NameCol:     "item name",
		CategoryCol: "category",
		SKUCol:      "sku",
		QuantityCol: "qty",
		UnitCol:     "unit",
		PriceCol:    "unit price",
		DescCol:     "description",
		LocationCol: "location",
		MinStockCol: "min stock",
	},
}

// normalise folds a header cell so "Unit Price " and "unit price" match.
func normalise(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
