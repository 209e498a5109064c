package domain

// Confidence describes how trustworthy a resolved lens identification is
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// LensProduct represents one contact-lens product in the catalog.
// Loaded once at startup and never mutated afterwards.
type LensProduct struct {
	ID         string    `json:"id"`
	Brand      string    `json:"brand"`
	Name       string    `json:"name"`
	Toric      bool      `json:"toric"`
	Multifocal bool      `json:"multifocal"`
	MultiBC    bool      `json:"multiBC"` // sold in more than one base curve configuration
	BaseCurves []float64 `json:"baseCurves"`
	Diameter   float64   `json:"diameter,omitempty"` // 0 when not published
	AddOptions []string  `json:"addOptions,omitempty"`
}

// ResolveInput carries the raw prescription text plus the structural hints
// available to the resolver. HasCyl/HasAdd come from a structured draft when
// one exists, or from the ADD token classifier on first-pass OCR text.
type ResolveInput struct {
	RawText   string  `json:"rawText" binding:"required"`
	HasCyl    bool    `json:"hasCyl"`
	HasAdd    bool    `json:"hasAdd"`
	BaseCurve float64 `json:"baseCurve,omitempty"` // 0 = no hint
	Diameter  float64 `json:"diameter,omitempty"`  // 0 = no hint
}

// ResolveResult is the deterministic scorer's verdict for one input.
// LensID is empty whenever Confidence is low; it is never empty at high.
type ResolveResult struct {
	LensID     string     `json:"lensId,omitempty"`
	Score      float64    `json:"score"`
	Confidence Confidence `json:"confidence"`
}

// Resolution is the orchestrator's final answer, combining the deterministic
// stage with the optional AI disambiguation stage.
type Resolution struct {
	ResolveResult
	AILensID  string `json:"aiLensId,omitempty"`
	Agreement bool   `json:"agreement"`
	Audited   bool   `json:"audited"` // true when the AI fallback was consulted
}

// ResolutionAudit is the append-only record emitted once per resolution call.
type ResolutionAudit struct {
	RawText   string `json:"rawText"`
	HybridID  string `json:"hybridId,omitempty"`
	AIID      string `json:"aiId,omitempty"`
	FinalID   string `json:"finalId,omitempty"`
	Agreement bool   `json:"agreement"`
}
