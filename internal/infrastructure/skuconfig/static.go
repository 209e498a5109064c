package skuconfig

// StaticRepository serves the three SKU configuration tables (months per
// box, per-box price in cents, lens-to-default-SKU) from in-memory maps.
// Missing entries are reported via the ok flag; the caller surfaces them as
// hard unconfigured-SKU errors; the system never guesses a price or
// duration.
type StaticRepository struct {
	durationMonths map[string]int
	priceCents     map[string]int64
	defaultSKU     map[string]string
}

// NewStaticRepository creates a repository over the built-in tables
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{
		durationMonths: defaultDurationMonths,
		priceCents:     defaultPriceCents,
		defaultSKU:     defaultSKUByLens,
	}
}

// NewStaticRepositoryWith creates a repository over custom tables (used by
// tests)
func NewStaticRepositoryWith(durations map[string]int, prices map[string]int64, defaults map[string]string) *StaticRepository {
	return &StaticRepository{
		durationMonths: durations,
		priceCents:     prices,
		defaultSKU:     defaults,
	}
}

// DurationMonths returns how many months one box of the SKU lasts
func (r *StaticRepository) DurationMonths(sku string) (int, bool) {
	months, ok := r.durationMonths[sku]
	return months, ok
}

// PriceCents returns the flat per-box price of the SKU in cents
func (r *StaticRepository) PriceCents(sku string) (int64, bool) {
	price, ok := r.priceCents[sku]
	return price, ok
}

// DefaultSKU returns the default physical box SKU for a lens identifier
func (r *StaticRepository) DefaultSKU(lensID string) (string, bool) {
	sku, ok := r.defaultSKU[lensID]
	return sku, ok
}

// defaultDurationMonths: per-eye months of wear per box. Daily 90-packs last
// three months, daily 30-packs one, two-week 12-packs six, monthly 6-packs
// six.
var defaultDurationMonths = map[string]int{
	"ACV_OASYS_2WK_12PK":          6,
	"ACV_OASYS_AST_6PK":           3,
	"ACV_OASYS_MF_6PK":            3,
	"ACV_OASYS_1DAY_90PK":         3,
	"ACV_OASYS_MAX_1DAY_90PK":     3,
	"ACV_OASYS_MAX_1DAY_AST_90PK": 3,
	"ACV_OASYS_MAX_1DAY_MF_90PK":  3,
	"ACV_MOIST_1DAY_90PK":         3,
	"ACV_VITA_6PK":                6,
	"ACV_DEFINE_1DAY_30PK":        1,
	"CV_BIOFINITY_6PK":            6,
	"CV_BIOFINITY_TORIC_6PK":      6,
	"CV_BIOFINITY_MF_6PK":         6,
	"CV_CLARITI_1DAY_90PK":        3,
	"CV_MYDAY_90PK":               3,
	"AL_DT1_90PK":                 3,
	"AL_DT1_MF_90PK":              3,
	"AL_AQUACOMFORT_90PK":         3,
	"AL_AIROPTIX_HG_6PK":          6,
	"AL_AIROPTIX_AST_6PK":         6,
	"AL_AIROPTIX_COLORS_6PK":      6,
	"AL_PRECISION1_90PK":          3,
	"AL_FRESHLOOK_6PK":            6,
	"BL_ULTRA_6PK":                6,
	"BL_INFUSE_90PK":              3,
	"BL_BIOTRUE_1DAY_90PK":        3,
}

// defaultPriceCents: flat per-box prices in integer cents
var defaultPriceCents = map[string]int64{
	"ACV_OASYS_2WK_12PK":          8999,
	"ACV_OASYS_AST_6PK":           5499,
	"ACV_OASYS_MF_6PK":            6299,
	"ACV_OASYS_1DAY_90PK":         9899,
	"ACV_OASYS_MAX_1DAY_90PK":     10999,
	"ACV_OASYS_MAX_1DAY_AST_90PK": 12499,
	"ACV_OASYS_MAX_1DAY_MF_90PK":  13299,
	"ACV_MOIST_1DAY_90PK":         8499,
	"ACV_VITA_6PK":                7699,
	"ACV_DEFINE_1DAY_30PK":        4299,
	"CV_BIOFINITY_6PK":            5299,
	"CV_BIOFINITY_TORIC_6PK":      6899,
	"CV_BIOFINITY_MF_6PK":         7999,
	"CV_CLARITI_1DAY_90PK":        7499,
	"CV_MYDAY_90PK":               8999,
	"AL_DT1_90PK":                 10499,
	"AL_DT1_MF_90PK":              12999,
	"AL_AQUACOMFORT_90PK":         6499,
	"AL_AIROPTIX_HG_6PK":          5999,
	"AL_AIROPTIX_AST_6PK":         7299,
	"AL_AIROPTIX_COLORS_6PK":      8299,
	"AL_PRECISION1_90PK":          7999,
	"AL_FRESHLOOK_6PK":            6999,
	"BL_ULTRA_6PK":                5799,
	"BL_INFUSE_90PK":              9499,
	"BL_BIOTRUE_1DAY_90PK":        7299,
}

// defaultSKUByLens: one default purchasable box configuration per lens
var defaultSKUByLens = map[string]string{
	"ACV_OASYS_2WK":          "ACV_OASYS_2WK_12PK",
	"ACV_OASYS_AST":          "ACV_OASYS_AST_6PK",
	"ACV_OASYS_MF":           "ACV_OASYS_MF_6PK",
	"ACV_OASYS_1DAY":         "ACV_OASYS_1DAY_90PK",
	"ACV_OASYS_MAX_1DAY":     "ACV_OASYS_MAX_1DAY_90PK",
	"ACV_OASYS_MAX_1DAY_AST": "ACV_OASYS_MAX_1DAY_AST_90PK",
	"ACV_OASYS_MAX_1DAY_MF":  "ACV_OASYS_MAX_1DAY_MF_90PK",
	"ACV_MOIST_1DAY":         "ACV_MOIST_1DAY_90PK",
	"ACV_VITA":               "ACV_VITA_6PK",
	"ACV_DEFINE_1DAY":        "ACV_DEFINE_1DAY_30PK",
	"CV_BIOFINITY":           "CV_BIOFINITY_6PK",
	"CV_BIOFINITY_TORIC":     "CV_BIOFINITY_TORIC_6PK",
	"CV_BIOFINITY_MF":        "CV_BIOFINITY_MF_6PK",
	"CV_CLARITI_1DAY":        "CV_CLARITI_1DAY_90PK",
	"CV_MYDAY":               "CV_MYDAY_90PK",
	"AL_DT1":                 "AL_DT1_90PK",
	"AL_DT1_MF":              "AL_DT1_MF_90PK",
	"AL_AQUACOMFORT":         "AL_AQUACOMFORT_90PK",
	"AL_AIROPTIX_HG":         "AL_AIROPTIX_HG_6PK",
	"AL_AIROPTIX_AST":        "AL_AIROPTIX_AST_6PK",
	"AL_AIROPTIX_COLORS":     "AL_AIROPTIX_COLORS_6PK",
	"AL_PRECISION1":          "AL_PRECISION1_90PK",
	"AL_FRESHLOOK":           "AL_FRESHLOOK_6PK",
	"BL_ULTRA":               "BL_ULTRA_6PK",
	"BL_INFUSE":              "BL_INFUSE_90PK",
	"BL_BIOTRUE_1DAY":        "BL_BIOTRUE_1DAY_90PK",
}
