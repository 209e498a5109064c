package usecase

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/lensmatch/backend/internal/domain"
)

// Token match weights. Brand hits dominate name hits, and scores are never
// normalized by token count: longer, more distinctive names scoring higher is
// intentional.
const (
	brandTokenWeight = 20.0
	nameTokenWeight  = 10.0
)

// Numeric agreement bonuses
const (
	baseCurveBonus    = 5.0
	diameterBonus     = 5.0
	diameterTolerance = 0.21 // mm; adjacent catalog diameters differ by more
)

// Default confidence band cutoffs. These are tuned policy constants, not
// physical ones; they are configurable so the scenario tests pin them down.
const (
	defaultHighScore    = 30.0
	defaultHighMargin   = 10.0
	defaultMediumScore  = 20.0
	defaultMediumMargin = 5.0
)

// ScorerConfig holds configuration for the deterministic scorer
type ScorerConfig struct {
	HighScore          float64
	HighMargin         float64
	MediumScore        float64
	MediumMargin       float64
	EnableDebugLogging bool
}

// Scorer ranks filtered candidates by textual and numeric agreement with the
// input and derives a confidence band from the winning score and its margin
// over the runner-up.
type Scorer struct {
	highScore          float64
	highMargin         float64
	mediumScore        float64
	mediumMargin       float64
	enableDebugLogging bool
}

// NewScorer creates a scorer with the given configuration, falling back to
// the default cutoffs for any value left at zero or below.
func NewScorer(config ScorerConfig) *Scorer {
	s := &Scorer{
		highScore:          config.HighScore,
		highMargin:         config.HighMargin,
		mediumScore:        config.MediumScore,
		mediumMargin:       config.MediumMargin,
		enableDebugLogging: config.EnableDebugLogging,
	}
	if s.highScore <= 0 {
		s.highScore = defaultHighScore
	}
	if s.highMargin <= 0 {
		s.highMargin = defaultHighMargin
	}
	if s.mediumScore <= 0 {
		s.mediumScore = defaultMediumScore
	}
	if s.mediumMargin <= 0 {
		s.mediumMargin = defaultMediumMargin
	}
	return s
}

// Resolve scores every candidate in a single pass, tracking the best and
// second-best totals, and applies the band policy:
//
//   - no candidates, or best tied with runner-up → low, no identifier, score 0
//   - best ≥ high cutoff and gap ≥ high margin → high
//   - best ≥ medium cutoff and gap ≥ medium margin → medium
//   - otherwise low, and the identifier is withheld even though a nominal
//     winner exists: low confidence must never leak a speculative identifier
//     to callers that short-circuit on non-empty identifiers.
func (s *Scorer) Resolve(input *domain.ResolveInput, candidates []domain.LensProduct) domain.ResolveResult {
	if len(candidates) == 0 {
		return domain.ResolveResult{Confidence: domain.ConfidenceLow}
	}

	inputTokens := Tokenize(input.RawText)

	var bestID string
	best, second := 0.0, 0.0
	for i := range candidates {
		p := &candidates[i]
		score := s.scoreCandidate(inputTokens, input, p)

		if s.enableDebugLogging {
			logrus.WithFields(logrus.Fields{
				"lens":  p.ID,
				"score": score,
			}).Debug("scored candidate")
		}

		if score > best {
			second = best
			best = score
			bestID = p.ID
		} else if score > second {
			second = score
		}
	}

	gap := best - second
	if bestID == "" || gap <= 0 {
		return domain.ResolveResult{Confidence: domain.ConfidenceLow}
	}

	confidence := domain.ConfidenceLow
	switch {
	case best >= s.highScore && gap >= s.highMargin:
		confidence = domain.ConfidenceHigh
	case best >= s.mediumScore && gap >= s.mediumMargin:
		confidence = domain.ConfidenceMedium
	}

	if confidence == domain.ConfidenceLow {
		return domain.ResolveResult{Score: best, Confidence: domain.ConfidenceLow}
	}

	return domain.ResolveResult{LensID: bestID, Score: best, Confidence: confidence}
}

// scoreCandidate sums the token and numeric contributions for one candidate.
// A token matching both brand and name only earns the brand weight.
func (s *Scorer) scoreCandidate(inputTokens []string, input *domain.ResolveInput, p *domain.LensProduct) float64 {
	brandTokens := tokenSet(Tokenize(p.Brand))
	nameTokens := tokenSet(Tokenize(p.Name))

	score := 0.0
	for _, token := range inputTokens {
		if brandTokens[token] {
			score += brandTokenWeight
			continue
		}
		if nameTokens[token] {
			score += nameTokenWeight
		}
	}

	if input.BaseCurve > 0 {
		for _, bc := range p.BaseCurves {
			if math.Abs(bc-input.BaseCurve) < 1e-9 {
				score += baseCurveBonus
				break
			}
		}
	}

	if input.Diameter > 0 && p.Diameter > 0 {
		if math.Abs(p.Diameter-input.Diameter) <= diameterTolerance {
			score += diameterBonus
		}
	}

	return score
}
