package catalog

import "github.com/lensmatch/backend/internal/domain"

// StaticRepository serves the lens catalog from an in-memory product list.
// Read-only after construction, so it is safe for arbitrarily many
// concurrent resolutions.
type StaticRepository struct {
	products []domain.LensProduct
	byID     map[string]*domain.LensProduct
}

// NewStaticRepository creates a catalog repository over the built-in product
// list
func NewStaticRepository() *StaticRepository {
	return NewStaticRepositoryWith(defaultProducts)
}

// NewStaticRepositoryWith creates a catalog repository over a custom product
// list (used by tests with small synthetic catalogs)
func NewStaticRepositoryWith(products []domain.LensProduct) *StaticRepository {
	byID := make(map[string]*domain.LensProduct, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}
	return &StaticRepository{products: products, byID: byID}
}

// Products returns the full catalog. Callers must not mutate the result.
func (r *StaticRepository) Products() []domain.LensProduct {
	return r.products
}

// Get looks up one product by identifier
func (r *StaticRepository) Get(id string) (*domain.LensProduct, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// defaultProducts is the storefront catalog. Identifier prefixes encode the
// manufacturer: ACV (Johnson & Johnson Acuvue), CV (CooperVision), AL
// (Alcon), BL (Bausch + Lomb).
var defaultProducts = []domain.LensProduct{
	// Johnson & Johnson / Acuvue
	{
		ID: "ACV_OASYS_2WK", Brand: "Acuvue", Name: "Oasys 2-Week",
		MultiBC: true, BaseCurves: []float64{8.4, 8.8}, Diameter: 14.0,
	},
	{
		ID: "ACV_OASYS_AST", Brand: "Acuvue", Name: "Oasys for Astigmatism",
		Toric: true, BaseCurves: []float64{8.6}, Diameter: 14.5,
	},
	{
		ID: "ACV_OASYS_MF", Brand: "Acuvue", Name: "Oasys Multifocal",
		Multifocal: true, BaseCurves: []float64{8.4}, Diameter: 14.3,
		AddOptions: []string{"LOW", "MID", "HIGH"},
	},
	{
		ID: "ACV_OASYS_1DAY", Brand: "Acuvue", Name: "Oasys 1-Day",
		MultiBC: true, BaseCurves: []float64{8.5, 9.0}, Diameter: 14.3,
	},
	{
		ID: "ACV_OASYS_MAX_1DAY", Brand: "Acuvue", Name: "Oasys Max 1-Day",
		BaseCurves: []float64{8.5}, Diameter: 14.3,
	},
	{
		ID: "ACV_OASYS_MAX_1DAY_AST", Brand: "Acuvue", Name: "Oasys Max 1-Day for Astigmatism",
		Toric: true, BaseCurves: []float64{8.5}, Diameter: 14.3,
	},
	{
		ID: "ACV_OASYS_MAX_1DAY_MF", Brand: "Acuvue", Name: "Oasys Max 1-Day Multifocal",
		Multifocal: true, BaseCurves: []float64{8.4}, Diameter: 14.3,
		AddOptions: []string{"LOW", "MID", "HIGH"},
	},
	{
		ID: "ACV_MOIST_1DAY", Brand: "Acuvue", Name: "Moist 1-Day",
		MultiBC: true, BaseCurves: []float64{8.5, 9.0}, Diameter: 14.2,
	},
	{
		ID: "ACV_VITA", Brand: "Acuvue", Name: "Vita",
		MultiBC: true, BaseCurves: []float64{8.4, 8.8}, Diameter: 14.0,
	},
	{
		ID: "ACV_DEFINE_1DAY", Brand: "Acuvue", Name: "Define 1-Day",
		BaseCurves: []float64{8.5}, Diameter: 14.2,
	},

	// CooperVision
	{
		ID: "CV_BIOFINITY", Brand: "Biofinity", Name: "Biofinity",
		BaseCurves: []float64{8.6}, Diameter: 14.0,
	},
	{
		ID: "CV_BIOFINITY_TORIC", Brand: "Biofinity", Name: "Biofinity Toric",
		Toric: true, BaseCurves: []float64{8.7}, Diameter: 14.5,
	},
	{
		ID: "CV_BIOFINITY_MF", Brand: "Biofinity", Name: "Biofinity Multifocal",
		Multifocal: true, BaseCurves: []float64{8.6}, Diameter: 14.0,
		AddOptions: []string{"+1.00", "+1.50", "+2.00", "+2.50"},
	},
	{
		ID: "CV_CLARITI_1DAY", Brand: "Clariti", Name: "Clariti 1 Day",
		BaseCurves: []float64{8.6}, Diameter: 14.1,
	},
	{
		ID: "CV_MYDAY", Brand: "MyDay", Name: "MyDay Daily Disposable",
		BaseCurves: []float64{8.4}, Diameter: 14.2,
	},

	// Alcon
	{
		ID: "AL_DT1", Brand: "Dailies", Name: "Total 1",
		BaseCurves: []float64{8.5}, Diameter: 14.1,
	},
	{
		ID: "AL_DT1_MF", Brand: "Dailies", Name: "Total 1 Multifocal",
		Multifocal: true, BaseCurves: []float64{8.5}, Diameter: 14.1,
		AddOptions: []string{"LO", "MED", "HI"},
	},
	{
		ID: "AL_AQUACOMFORT", Brand: "Dailies", Name: "AquaComfort Plus",
		BaseCurves: []float64{8.7}, Diameter: 14.0,
	},
	{
		ID: "AL_AIROPTIX_HG", Brand: "Air Optix", Name: "plus HydraGlyde",
		BaseCurves: []float64{8.6}, Diameter: 14.2,
	},
	{
		ID: "AL_AIROPTIX_AST", Brand: "Air Optix", Name: "plus HydraGlyde for Astigmatism",
		Toric: true, BaseCurves: []float64{8.7}, Diameter: 14.5,
	},
	{
		ID: "AL_AIROPTIX_COLORS", Brand: "Air Optix", Name: "Colors",
		BaseCurves: []float64{8.6}, Diameter: 14.2,
	},
	{
		ID: "AL_PRECISION1", Brand: "Precision1", Name: "Precision1",
		BaseCurves: []float64{8.3}, Diameter: 14.2,
	},
	{
		ID: "AL_FRESHLOOK", Brand: "FreshLook", Name: "Colorblends",
		BaseCurves: []float64{8.6}, Diameter: 14.5,
	},

	// Bausch + Lomb
	{
		ID: "BL_ULTRA", Brand: "Bausch + Lomb", Name: "Ultra",
		BaseCurves: []float64{8.5}, Diameter: 14.2,
	},
	{
		ID: "BL_INFUSE", Brand: "Bausch + Lomb", Name: "Infuse One-Day",
		BaseCurves: []float64{8.6}, Diameter: 14.2,
	},
	{
		ID: "BL_BIOTRUE_1DAY", Brand: "Biotrue", Name: "ONEday Daily Disposable",
		BaseCurves: []float64{8.6}, Diameter: 14.2,
	},
}
