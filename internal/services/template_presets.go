package services

// TemplatePresetID names a built-in order message template.
type TemplatePresetID = string

const (
	PresetProfessional TemplatePresetID = "professional"
	PresetFriendly     TemplatePresetID = "friendly"
	PresetRamadan      TemplatePresetID = "ramadan"
	PresetEid          TemplatePresetID = "eid"
	PresetMinimal      TemplatePresetID = "minimal"
)

// OrderTemplatePreset is a ready-to-use WhatsApp order message template.
// Templates use the placeholder keys from OrderMessageParams.PlaceholderMap.
type OrderTemplatePreset struct {
	ID       TemplatePresetID `json:"id"`
	Name     string           `json:"name"`
	Template string           `json:"template"`
}

var templatePresets = []OrderTemplatePreset{
	{
		ID:   PresetProfessional,
		Name: "Professional",
		Template: `*New order – Kordoba Farms*

*Customer details*
Name: {{name}}
Phone: {{phone}}
Address: {{address}}
Email: {{email}}

*Order summary*
• Product: {{productLabel}}
• Occasion: {{purpose}}
• Slaughter date: {{slaughterDate}}
• Distribution: {{distributionType}}
• {{weightLine}}
• Special cut: {{specialCut}}
• Order includes: {{orderIncludes}}
• Video proof: {{videoProof}}
• Note: {{note}}

*Total: {{priceRange}}* (based on final weight)

Thank you for your order. We will confirm shortly.`,
	},
	{
		ID:   PresetFriendly,
		Name: "Friendly",
		Template: `Assalamualaikum! 👋

*New order from {{name}}*

📞 {{phone}}
📍 {{address}}
📧 {{email}}

*What they ordered*
{{productLabel}} · {{purpose}}
Slaughter: {{slaughterDate}}
Delivery: {{distributionType}}
{{weightLine}}
Cut: {{specialCut}}
Extras: {{orderIncludes}}
Video proof: {{videoProof}}
Note: {{note}}

💰 *Total: {{priceRange}}* (final weight may vary)

Jazakallah khair – we'll be in touch!`,
	},
	{
		ID:   PresetRamadan,
		Name: "Ramadan",
		Template: `🌙 *Ramadan Mubarak – New order – Kordoba Farms*

*Customer*
Name: {{name}}
Phone: {{phone}}
Address: {{address}}
Email: {{email}}

*Order*
• Product: {{productLabel}}
• Occasion: {{purpose}}
• Slaughter date: {{slaughterDate}}
• Distribution: {{distributionType}}
• {{weightLine}}
• Special cut: {{specialCut}}
• Order includes: {{orderIncludes}}
• Video proof: {{videoProof}}
• Note: {{note}}

*Total: {{priceRange}}* (based on final weight)

Barakallahu fikum. We will confirm your order shortly.`,
	},
	{
		ID:   PresetEid,
		Name: "Eid al-Adha",
		Template: `🕌 *Eid Mubarak – New order – Kordoba Farms*

*Customer*
Name: {{name}}
Phone: {{phone}}
Address: {{address}}
Email: {{email}}

*Order*
• Product: {{productLabel}}
• Occasion: {{purpose}}
• Slaughter date: {{slaughterDate}}
• Distribution: {{distributionType}}
• {{weightLine}}
• Special cut: {{specialCut}}
• Order includes: {{orderIncludes}}
• Video proof: {{videoProof}}
• Note: {{note}}

*Total: {{priceRange}}* (based on final weight)

Eid Mubarak! We will confirm your Qurban order shortly.`,
	},
	{
		ID:   PresetMinimal,
		Name: "Minimal",
		Template: `*Order – Kordoba Farms*

{{name}} · {{phone}}
{{address}}
{{email}}

{{productLabel}} · {{purpose}}
{{slaughterDate}} · {{distributionType}}
{{weightLine}} · {{specialCut}}
{{orderIncludes}} · Video: {{videoProof}}
{{note}}

*Total: {{priceRange}}*`,
	},
}

// TemplatePresets lists all built-in presets.
func TemplatePresets() []OrderTemplatePreset {
	out := make([]OrderTemplatePreset, len(templatePresets))
	copy(out, templatePresets)
	return out
}

// TemplatePreset returns the preset with the given id.
func TemplatePreset(id string) (OrderTemplatePreset, bool) {
	for _, p := range templatePresets {
		if p.ID == id {
			return p, true
		}
	}
	return OrderTemplatePreset{}, false
}
