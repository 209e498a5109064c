package usecase

import "regexp"

// ADDClassification reports whether raw OCR text carries a usable ADD-power
// token, and whether the reading was ambiguous.
type ADDClassification struct {
	HasAdd      bool `json:"hasAdd"`
	IsAmbiguous bool `json:"isAmbiguous"`
}

// Compiled patterns for ADD-power tokens
var (
	// Numeric ADD values like "+2.00", "-1.25" or "1.50N" (optional sign, one
	// digit, two decimals, optional single-letter distance modifier)
	numericAddRegex = regexp.MustCompile(`[+-]?\d\.\d{2}[A-Za-z]?`)

	// Categorical ADD values printed as severity words
	categoricalAddRegex = regexp.MustCompile(`(?i)\b(low|med|medium|high)\b`)
)

// ClassifyAddTokens decides from raw text alone whether an ADD power is
// present. It is used on first-pass OCR output, before a structured
// prescription draft exists, to derive the hasAdd signal for structural
// filtering.
//
// More than one candidate token is treated as OCR noise rather than a genuine
// reading: the classifier reports ambiguous and ADD absent, so downstream
// filtering does not gate on multifocal structure from unreliable evidence.
func ClassifyAddTokens(rawText string) ADDClassification {
	matches := len(numericAddRegex.FindAllString(rawText, -1)) +
		len(categoricalAddRegex.FindAllString(rawText, -1))

	switch matches {
	case 0:
		return ADDClassification{}
	case 1:
		return ADDClassification{HasAdd: true}
	default:
		return ADDClassification{IsAmbiguous: true}
	}
}
