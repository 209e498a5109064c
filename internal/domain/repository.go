package domain

import "context"

// CatalogRepository provides read-only access to the loaded lens catalog
type CatalogRepository interface {
	Products() []LensProduct
	Get(id string) (*LensProduct, bool)
}

// ColorTable maps a product display name to its selectable color names.
// Used downstream of identification, never by the resolver itself.
type ColorTable interface {
	ColorsFor(displayName string) []string
}

// LensClassifier defines the AI disambiguation collaborator. Classify returns
// one of the supplied labels verbatim, or an empty string for no match.
type LensClassifier interface {
	Classify(ctx context.Context, rawText string, labels []string) (string, error)
}

// AuditSink receives append-only resolution audit records. Implementations
// must never be read back by the core.
type AuditSink interface {
	Record(ctx context.Context, audit *ResolutionAudit) error
}

// ProductConfigRepository consolidates the three static SKU configuration
// tables (box duration, per-box price, lens-to-default-SKU) behind one lookup
// so the missing-configuration error path stays uniform.
type ProductConfigRepository interface {
	DurationMonths(sku string) (int, bool)
	PriceCents(sku string) (int64, bool)
	DefaultSKU(lensID string) (string, bool)
}
