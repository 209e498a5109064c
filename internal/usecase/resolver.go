package usecase

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lensmatch/backend/internal/domain"
)

// defaultMaxAICandidates caps how many candidates the AI fallback may be
// asked to choose between. Above the cap the call is skipped entirely, never
// batched.
const defaultMaxAICandidates = 15

// ResolverConfig holds configuration for the resolution orchestrator
type ResolverConfig struct {
	Scorer          ScorerConfig
	MaxAICandidates int
}

// Resolver sequences the structural filter chain, the deterministic scorer
// and the optional AI disambiguation fallback over a single resolution
// request, and emits the audit record on every terminal path.
type Resolver struct {
	catalog         domain.CatalogRepository
	classifier      domain.LensClassifier
	auditSink       domain.AuditSink
	filters         *FilterChain
	scorer          *Scorer
	maxAICandidates int
}

// NewResolver creates a resolution orchestrator. classifier may be nil when
// the AI fallback is disabled; auditSink may be nil in tests.
func NewResolver(
	catalog domain.CatalogRepository,
	classifier domain.LensClassifier,
	auditSink domain.AuditSink,
	config ResolverConfig,
) *Resolver {
	maxAI := config.MaxAICandidates
	if maxAI <= 0 {
		maxAI = defaultMaxAICandidates
	}

	return &Resolver{
		catalog:         catalog,
		classifier:      classifier,
		auditSink:       auditSink,
		filters:         NewFilterChain(),
		scorer:          NewScorer(config.Scorer),
		maxAICandidates: maxAI,
	}
}

// Resolve narrows the catalog to a single confident lens identification.
// Decision policy:
//
//   - high deterministic confidence short-circuits: no AI call, agreement
//     reported true by convention (single-source confirmation), audited false
//   - medium keeps the deterministic identifier directly, no AI call
//   - low escalates to the AI fallback when the candidate list is small
//     enough to enumerate; an AI hit upgrades confidence to medium
//
// Ambiguity is a valid outcome, not an error: an empty identifier at low
// confidence routes the caller to manual selection.
func (r *Resolver) Resolve(ctx context.Context, input *domain.ResolveInput) (*domain.Resolution, error) {
	if input == nil || strings.TrimSpace(input.RawText) == "" {
		return nil, domain.ErrInvalidRequest
	}

	candidates := r.filters.Apply(input, r.catalog.Products())
	deterministic := r.scorer.Resolve(input, candidates)

	resolution := &domain.Resolution{ResolveResult: deterministic}

	switch deterministic.Confidence {
	case domain.ConfidenceHigh:
		resolution.Agreement = true
	case domain.ConfidenceMedium:
		// deterministic identifier stands, no second opinion sought
	default:
		r.consultClassifier(ctx, input, candidates, &deterministic, resolution)
	}

	r.recordAudit(ctx, input, &deterministic, resolution)

	return resolution, nil
}

// consultClassifier asks the AI fallback to choose among the surviving
// candidates. Classifier failure degrades to "no AI opinion" rather than
// failing the resolution.
func (r *Resolver) consultClassifier(
	ctx context.Context,
	input *domain.ResolveInput,
	candidates []domain.LensProduct,
	deterministic *domain.ResolveResult,
	resolution *domain.Resolution,
) {
	if r.classifier == nil || len(candidates) == 0 || len(candidates) > r.maxAICandidates {
		return
	}

	resolution.Audited = true

	labels := make([]string, len(candidates))
	idByLabel := make(map[string]string, len(candidates))
	for i := range candidates {
		label := strings.TrimSpace(candidates[i].Brand + " " + candidates[i].Name)
		labels[i] = label
		idByLabel[strings.ToLower(label)] = candidates[i].ID
	}

	choice, err := r.classifier.Classify(ctx, input.RawText, labels)
	if err != nil {
		logrus.WithError(err).Warn("lens classifier call failed, keeping deterministic result")
		return
	}

	// Only an exact (case-insensitive) echo of a supplied label is accepted;
	// paraphrases and partial matches are treated as no match.
	id, ok := idByLabel[strings.ToLower(strings.TrimSpace(choice))]
	if !ok {
		return
	}

	resolution.AILensID = id
	resolution.LensID = id
	resolution.Confidence = domain.ConfidenceMedium
	resolution.Agreement = deterministic.LensID != "" && deterministic.LensID == id
}

// recordAudit emits the append-only audit record. A sink failure is logged
// and swallowed: it must never alter or abort the resolution result.
func (r *Resolver) recordAudit(
	ctx context.Context,
	deterministicInput *domain.ResolveInput,
	deterministic *domain.ResolveResult,
	resolution *domain.Resolution,
) {
	if r.auditSink == nil {
		return
	}

	audit := &domain.ResolutionAudit{
		RawText:   deterministicInput.RawText,
		HybridID:  deterministic.LensID,
		AIID:      resolution.AILensID,
		FinalID:   resolution.LensID,
		Agreement: resolution.Agreement,
	}

	if err := r.auditSink.Record(ctx, audit); err != nil {
		logrus.WithError(err).Error("failed to record resolution audit")
	}
}
