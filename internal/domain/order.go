package domain

// QuantityConfig describes the selectable box quantities for a SKU under the
// current prescription. Computed fresh on every request: days-until-expiry
// shrinks daily, so this is never cached.
type QuantityConfig struct {
	SKU          string `json:"sku"`
	MonthsPerBox int    `json:"monthsPerBox"`
	Label        string `json:"label"`
	DefaultBoxes int    `json:"defaultBoxes"` // per eye
	MaxBoxes     int    `json:"maxBoxes"`     // per eye, equals the prescription-derived cap
	Options      []int  `json:"options"`      // 0..MaxBoxes
}

// OrderQuote is the output of the prescription-to-order derivation chain.
type OrderQuote struct {
	LensID         string         `json:"lensId"`
	SKU            string         `json:"sku"`
	SupplyMonths   int            `json:"supplyMonths"`
	Boxes          int            `json:"boxes"` // per eye
	UnitPriceCents int64          `json:"unitPriceCents"`
	TotalCents     int64          `json:"totalCents"`
	Quantity       QuantityConfig `json:"quantity"`
}
