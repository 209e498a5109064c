package usecase

import (
	"strings"

	"github.com/lensmatch/backend/internal/domain"
)

// ManufacturerRule maps a keyword found in normalized prescription text to
// the catalog identifier prefix of the manufacturer it implies. Rules are
// evaluated in order; the first hit wins.
type ManufacturerRule struct {
	Keyword string
	Prefix  string
}

// defaultManufacturerRules cover the manufacturers carried in the catalog.
// House-brand and product-line names imply the manufacturer even when the
// manufacturer itself is not printed on the prescription.
var defaultManufacturerRules = []ManufacturerRule{
	{Keyword: "acuvue", Prefix: "ACV"},
	{Keyword: "oasys", Prefix: "ACV"},
	{Keyword: "vita", Prefix: "ACV"},
	{Keyword: "coopervision", Prefix: "CV"},
	{Keyword: "biofinity", Prefix: "CV"},
	{Keyword: "clariti", Prefix: "CV"},
	{Keyword: "myday", Prefix: "CV"},
	{Keyword: "proclear", Prefix: "CV"},
	{Keyword: "alcon", Prefix: "AL"},
	{Keyword: "dailies", Prefix: "AL"},
	{Keyword: "air optix", Prefix: "AL"},
	{Keyword: "precision1", Prefix: "AL"},
	{Keyword: "freshlook", Prefix: "AL"},
	{Keyword: "bausch", Prefix: "BL"},
	{Keyword: "biotrue", Prefix: "BL"},
	{Keyword: "infuse", Prefix: "BL"},
	{Keyword: "ultra", Prefix: "BL"},
}

// dailyKeywords are the explicit substrings that signal a daily-disposable
// product, checked against normalized text. Absence of these substrings is
// never treated as evidence either way.
var dailyKeywords = []string{
	"1 day",
	"one day",
	"dailies",
	"daily",
}

// FilterChain narrows the catalog to a plausible candidate subset before
// scoring, using only unambiguous structural and manufacturer cues. Fuzzy
// brand matching is the scorer's job, never the chain's.
type FilterChain struct {
	manufacturerRules []ManufacturerRule
}

// NewFilterChain creates a filter chain with the default detector rules
func NewFilterChain() *FilterChain {
	return &FilterChain{manufacturerRules: defaultManufacturerRules}
}

// NewFilterChainWithRules creates a filter chain with custom manufacturer
// rules (used by tests with synthetic catalogs)
func NewFilterChainWithRules(rules []ManufacturerRule) *FilterChain {
	return &FilterChain{manufacturerRules: rules}
}

// Apply runs the four stages in fixed order over the survivors of each
// previous stage. Stages only ever remove candidates; nothing dropped is
// re-added later in the same resolution.
func (f *FilterChain) Apply(input *domain.ResolveInput, products []domain.LensProduct) []domain.LensProduct {
	normalized := Normalize(input.RawText)

	candidates := f.filterByManufacturer(normalized, products)
	candidates = filterByToric(input.HasCyl, candidates)
	candidates = filterByMultifocal(input.HasAdd, candidates)
	candidates = partitionByDaily(normalized, candidates)

	return candidates
}

// DetectManufacturer returns the identifier prefix implied by the text, or
// empty when no rule matches.
func (f *FilterChain) DetectManufacturer(normalizedText string) string {
	for _, rule := range f.manufacturerRules {
		if strings.Contains(normalizedText, rule.Keyword) {
			return rule.Prefix
		}
	}
	return ""
}

// filterByManufacturer drops candidates from other manufacturers when the
// text names one. Skip-if-empty: no detection means no filtering.
func (f *FilterChain) filterByManufacturer(normalizedText string, products []domain.LensProduct) []domain.LensProduct {
	prefix := f.DetectManufacturer(normalizedText)
	if prefix == "" {
		return products
	}

	var kept []domain.LensProduct
	for _, p := range products {
		if strings.HasPrefix(p.ID, prefix+"_") {
			kept = append(kept, p)
		}
	}
	return kept
}

// filterByToric keeps only candidates whose toric flag equals the input's
// hasCyl flag. A cylinder value means a toric lens, full stop.
func filterByToric(hasCyl bool, products []domain.LensProduct) []domain.LensProduct {
	var kept []domain.LensProduct
	for _, p := range products {
		if p.Toric == hasCyl {
			kept = append(kept, p)
		}
	}
	return kept
}

// filterByMultifocal keeps only candidates whose multifocal flag equals the
// input's hasAdd flag.
func filterByMultifocal(hasAdd bool, products []domain.LensProduct) []domain.LensProduct {
	var kept []domain.LensProduct
	for _, p := range products {
		if p.Multifocal == hasAdd {
			kept = append(kept, p)
		}
	}
	return kept
}

// partitionByDaily restricts candidates to the daily or non-daily family
// matching the text's intent. Apply-if-nonempty: when the restriction would
// empty the candidate set (a catalog gap), the stage leaves it unchanged.
func partitionByDaily(normalizedText string, products []domain.LensProduct) []domain.LensProduct {
	wantDaily := containsDailyKeyword(normalizedText)

	var kept []domain.LensProduct
	for _, p := range products {
		if isDailyProduct(&p) == wantDaily {
			kept = append(kept, p)
		}
	}

	if len(kept) == 0 {
		return products
	}
	return kept
}

// IsDailyText reports whether normalized text explicitly signals a
// daily-disposable product.
func IsDailyText(rawText string) bool {
	return containsDailyKeyword(Normalize(rawText))
}

func containsDailyKeyword(normalizedText string) bool {
	for _, kw := range dailyKeywords {
		if strings.Contains(normalizedText, kw) {
			return true
		}
	}
	return false
}

// isDailyProduct checks the product's own brand and display name for the
// same explicit daily substrings used on the input side.
func isDailyProduct(p *domain.LensProduct) bool {
	return containsDailyKeyword(Normalize(p.Brand + " " + p.Name))
}
