package usecase

import "testing"

func TestClassifyAddTokens(t *testing.T) {
	testCases := []struct {
		name          string
		rawText       string
		wantHasAdd    bool
		wantAmbiguous bool
	}{
		{
			name:    "no tokens at all",
			rawText: "Acuvue Oasys 2-Week",
		},
		{
			name:       "single numeric add",
			rawText:    "ADD +2.00",
			wantHasAdd: true,
		},
		{
			name:       "single numeric add without sign",
			rawText:    "add 1.50",
			wantHasAdd: true,
		},
		{
			name:       "numeric add with distance modifier",
			rawText:    "ADD +2.00N",
			wantHasAdd: true,
		},
		{
			name:       "single categorical add",
			rawText:    "ADD: HIGH",
			wantHasAdd: true,
		},
		{
			name:       "categorical add lowercase",
			rawText:    "add low",
			wantHasAdd: true,
		},
		{
			name:          "two numeric tokens are ambiguous",
			rawText:       "+2.00 N +1.50 D",
			wantAmbiguous: true,
		},
		{
			name:          "numeric plus categorical is ambiguous",
			rawText:       "ADD +1.25 MED",
			wantAmbiguous: true,
		},
		{
			name:          "two categorical tokens are ambiguous",
			rawText:       "LOW or HIGH",
			wantAmbiguous: true,
		},
		{
			name:    "severity word inside a longer word does not count",
			rawText: "highlight the medal",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyAddTokens(tc.rawText)
			if got.HasAdd != tc.wantHasAdd {
				t.Errorf("HasAdd = %v, want %v", got.HasAdd, tc.wantHasAdd)
			}
			if got.IsAmbiguous != tc.wantAmbiguous {
				t.Errorf("IsAmbiguous = %v, want %v", got.IsAmbiguous, tc.wantAmbiguous)
			}
		})
	}
}

func TestClassifyAddTokensNeverReportsAddWhenAmbiguous(t *testing.T) {
	// Multiple candidate tokens are treated as OCR noise: ADD must be
	// reported absent so structural filtering does not gate on them.
	texts := []string{
		"+2.00 N +1.50 D",
		"1.25 2.50 3.75",
		"LOW MED HIGH",
	}
	for _, text := range texts {
		got := ClassifyAddTokens(text)
		if got.IsAmbiguous && got.HasAdd {
			t.Errorf("ClassifyAddTokens(%q) reported both ambiguous and hasAdd", text)
		}
	}
}
