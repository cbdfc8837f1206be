package domain

import "testing"

func TestNormalizeTier(t *testing.T) {
	cases := []struct {
		raw  string
		want Tier
	}{
		{"basic", TierBasic},
		{"pro", TierPro},
		{"advance", TierAdvance},
		{"  Pro  ", TierPro},
		{"ADVANCE", TierAdvance},
		{"پایه", TierBasic},
		{"حرفه‌ای", TierPro}, // display form with zero-width non-joiner
		{"پیشرفته", TierAdvance},
		{"", TierBasic},
		{"enterprise", TierBasic},
		{"\ufeffpro", TierPro}, // leading byte order mark
		{"\u062d\u0631\u0641\u0647\u200c\u0627\u06cc", TierPro}, // same display form, escaped
		{"pro\u200d", TierPro}, // trailing zero-width joiner
	}
	for _, tc := range cases {
		if got := NormalizeTier(tc.raw); got != tc.want {
			t.Errorf("NormalizeTier(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeTierIdempotent(t *testing.T) {
	for _, tier := range []Tier{TierBasic, TierPro, TierAdvance} {
		if got := NormalizeTier(tier.String()); got != tier {
			t.Errorf("NormalizeTier(%q) = %v, want %v", tier.String(), got, tier)
		}
		if got := NormalizeTier(tier.DisplayName()); got != tier {
			t.Errorf("NormalizeTier(%q) = %v, want %v", tier.DisplayName(), got, tier)
		}
	}
}

func TestHasPlanAccess(t *testing.T) {
	cases := []struct {
		plan     string
		required Tier
		want     bool
	}{
		{"basic", TierBasic, true},
		{"basic", TierPro, false},
		{"basic", TierAdvance, false},
		{"pro", TierBasic, true},
		{"pro", TierPro, true},
		{"pro", TierAdvance, false},
		{"advance", TierAdvance, true},
		{"حرفه‌ای", TierPro, true},
		{"", TierBasic, false}, // absent plan grants nothing
		{"   ", TierBasic, false},
		{"unknown-plan", TierBasic, true}, // unknown degrades to basic
		{"unknown-plan", TierPro, false},
	}
	for _, tc := range cases {
		if got := HasPlanAccess(tc.plan, tc.required); got != tc.want {
			t.Errorf("HasPlanAccess(%q, %v) = %v, want %v", tc.plan, tc.required, got, tc.want)
		}
	}
}
