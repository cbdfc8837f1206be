package domain

import "strings"

// Tier enumerates subscription plan levels, ordered lowest to highest.
type Tier int

const (
	TierBasic Tier = iota
	TierPro
	TierAdvance
)

// String returns the canonical tier name.
func (t Tier) String() string {
	switch t {
	case TierPro:
		return "pro"
	case TierAdvance:
		return "advance"
	default:
		return "basic"
	}
}

// DisplayName returns the localized display form shown in the panel UI.
func (t Tier) DisplayName() string {
	switch t {
	case TierPro:
		return "حرفه‌ای"
	case TierAdvance:
		return "پیشرفته"
	default:
		return "پایه"
	}
}

// tierNames maps cleaned plan strings (canonical and display forms) to tiers.
var tierNames = map[string]Tier{
	"basic":   TierBasic,
	"pro":     TierPro,
	"advance": TierAdvance,
	"پایه":    TierBasic,
	"حرفهای":  TierPro,
	"پیشرفته": TierAdvance,
}

// invisibleReplacer drops Unicode artifacts the upstream system embeds in
// display-form plan names: zero-width non-joiner, zero-width joiner, BOM.
// Escapes, not raw characters: the compiler rejects a BOM mid-file and
// editors mangle invisible literals.
var invisibleReplacer = strings.NewReplacer("\u200c", "", "\u200d", "", "\ufeff", "")

// NormalizeTier maps a raw plan string, in canonical or localized display
// form, to a Tier. Unknown or empty input degrades to TierBasic.
func NormalizeTier(raw string) Tier {
	cleaned := strings.ToLower(strings.TrimSpace(invisibleReplacer.Replace(raw)))
	if tier, ok := tierNames[cleaned]; ok {
		return tier
	}
	return TierBasic
}

// HasPlanAccess reports whether the raw plan string covers the required tier.
// An absent plan never does.
func HasPlanAccess(userPlanRaw string, required Tier) bool {
	if strings.TrimSpace(userPlanRaw) == "" {
		return false
	}
	return NormalizeTier(userPlanRaw) >= required
}
