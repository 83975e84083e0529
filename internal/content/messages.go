package content

import "strings"

// Locales supported by the storefront. The first entry is the default.
var Locales = []string{"en", "ar", "ms", "zh"}

// ValidLocale reports whether locale is one the storefront serves.
func ValidLocale(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}

// staticMessages are the built-in message bundles. Database translation rows
// are merged on top of these so a missing override never produces a missing
// key.
var staticMessages = map[string]map[string]any{
	"en": {
		"purpose": map[string]any{
			"qurban":   "Qurban",
			"aqiqah":   "Aqiqah",
			"personal": "Personal",
		},
		"orderDetails": map[string]any{
			"delivery": "Delivery",
			"pickup":   "Pickup",
			"donate":   "Donate",
		},
		"orderWizard": map[string]any{
			"sheep": "Sheep",
			"goat":  "Goat",
			"half":  "Half",
			"whole": "Whole",
		},
	},
	"ar": {
		"purpose": map[string]any{
			"qurban":   "قربان",
			"aqiqah":   "عقيقة",
			"personal": "استهلاك شخصي",
		},
		"orderDetails": map[string]any{
			"delivery": "توصيل",
			"pickup":   "استلام",
			"donate":   "تبرع",
		},
		"orderWizard": map[string]any{
			"sheep": "خروف",
			"goat":  "ماعز",
			"half":  "نصف",
			"whole": "كامل",
		},
	},
	"ms": {
		"purpose": map[string]any{
			"qurban":   "Qurban",
			"aqiqah":   "Aqiqah",
			"personal": "Peribadi",
		},
		"orderDetails": map[string]any{
			"delivery": "Penghantaran",
			"pickup":   "Ambil sendiri",
			"donate":   "Derma",
		},
		"orderWizard": map[string]any{
			"sheep": "Kambing biri-biri",
			"goat":  "Kambing",
			"half":  "Separuh",
			"whole": "Penuh",
		},
	},
	"zh": {
		"purpose": map[string]any{
			"qurban":   "古尔邦",
			"aqiqah":   "阿奇卡",
			"personal": "个人食用",
		},
		"orderDetails": map[string]any{
			"delivery": "配送",
			"pickup":   "自取",
			"donate":   "捐赠",
		},
		"orderWizard": map[string]any{
			"sheep": "绵羊",
			"goat":  "山羊",
			"half":  "半只",
			"whole": "整只",
		},
	},
}

// NestKeys builds a nested message tree from flat dot-path keys, so
// "nav.home" becomes {"nav": {"home": ...}}.
func NestKeys(flat map[string]string) map[string]any {
	result := map[string]any{}
	for key, value := range flat {
		parts := strings.Split(key, ".")
		current := result
		for i := 0; i < len(parts)-1; i++ {
			next, ok := current[parts[i]].(map[string]any)
			if !ok {
				next = map[string]any{}
				current[parts[i]] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = value
	}
	return result
}

// MergeMessages deep-merges overrides into base, overrides winning on leaf
// conflicts. Neither input is mutated.
func MergeMessages(base, overrides map[string]any) map[string]any {
	if len(overrides) == 0 {
		return base
	}
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for key, value := range overrides {
		subOverride, overrideIsMap := value.(map[string]any)
		subBase, baseIsMap := out[key].(map[string]any)
		if overrideIsMap && baseIsMap {
			out[key] = MergeMessages(subBase, subOverride)
		} else {
			out[key] = value
		}
	}
	return out
}

// StaticMessages returns the built-in bundle for a locale, falling back to
// English.
func StaticMessages(locale string) map[string]any {
	if m, ok := staticMessages[locale]; ok {
		return m
	}
	return staticMessages["en"]
}
