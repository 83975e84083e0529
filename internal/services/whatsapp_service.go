package services

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/example/kordoba/internal/cart"
	"github.com/example/kordoba/internal/utils"
)

// DefaultWhatsAppLink is used when no link is configured in settings or env.
const DefaultWhatsAppLink = "https://wa.me/60123456789"

// WhatsAppService composes order messages and click-to-chat links.
type WhatsAppService struct {
	fallbackLink string
}

// NewWhatsAppService creates a new WhatsAppService. fallbackLink is used when
// a request carries no configured link; empty falls back to the built-in number.
func NewWhatsAppService(fallbackLink string) *WhatsAppService {
	if strings.TrimSpace(fallbackLink) == "" {
		fallbackLink = DefaultWhatsAppLink
	}
	return &WhatsAppService{fallbackLink: fallbackLink}
}

// OrderMessageParams carries everything a single-order message needs.
type OrderMessageParams struct {
	Name              string
	Phone             string
	Address           string
	Email             string
	ProductLabel      string
	MinPrice          float64
	MaxPrice          float64
	SlaughterDate     string
	DistributionType  string
	Purpose           string
	PurposeLabel      string
	WeightSelection   string
	WeightLabel       string
	SpecialCut        string
	IncludeHead       bool
	IncludeStomach    bool
	IncludeIntestines bool
	VideoProof        bool
	Note              string
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orderIncludes(head, stomach, intestines bool) string {
	var includes []string
	if head {
		includes = append(includes, "Head")
	}
	if stomach {
		includes = append(includes, "Stomach")
	}
	if intestines {
		includes = append(includes, "Intestines")
	}
	if len(includes) == 0 {
		return "—"
	}
	return strings.Join(includes, ", ")
}

func weightLine(selection, label string) string {
	if l := strings.TrimSpace(label); l != "" {
		return "Weight: " + l
	}
	if selection != "" && selection != "as_is" {
		if selection == "range" {
			return "Weight: Weight range (contact us)"
		}
		return "Weight: " + selection
	}
	return "Weight: As is (standard)"
}

// PlaceholderMap builds the full placeholder set a message template can use.
// Every value is already display-ready: missing optional fields degrade to
// "TBD", "—" or the empty string rather than producing broken output.
func (p OrderMessageParams) PlaceholderMap() map[string]string {
	purpose := p.PurposeLabel
	if purpose == "" {
		purpose = p.Purpose
	}
	slaughterDate := p.SlaughterDate
	if strings.TrimSpace(slaughterDate) == "" {
		slaughterDate = "TBD"
	}
	specialCut := p.SpecialCut
	if strings.TrimSpace(specialCut) == "" {
		specialCut = "—"
	}

	return map[string]string{
		"name":             p.Name,
		"phone":            p.Phone,
		"address":          p.Address,
		"email":            p.Email,
		"productLabel":     p.ProductLabel,
		"minPrice":         fmt.Sprintf("%g", p.MinPrice),
		"maxPrice":         fmt.Sprintf("%g", p.MaxPrice),
		"priceRange":       utils.FormatPriceRange(p.MinPrice, p.MaxPrice, ""),
		"slaughterDate":    slaughterDate,
		"distributionType": p.DistributionType,
		"purpose":          purpose,
		"weightLine":       weightLine(p.WeightSelection, p.WeightLabel),
		"weightSelection":  p.WeightSelection,
		"specialCut":       specialCut,
		"orderIncludes":    orderIncludes(p.IncludeHead, p.IncludeStomach, p.IncludeIntestines),
		"videoProof":       yesNo(p.VideoProof),
		"note":             p.Note,
	}
}

// ApplyTemplate replaces every {{key}} occurrence in the template with the
// corresponding placeholder value. Unrecognized placeholders are left verbatim.
func ApplyTemplate(template string, params OrderMessageParams) string {
	out := template
	for key, value := range params.PlaceholderMap() {
		out = strings.ReplaceAll(out, "{{"+key+"}}", value)
	}
	return out
}

// BuildOrderMessage renders the default single-order layout. Empty email and
// note lines are omitted entirely.
func BuildOrderMessage(params OrderMessageParams) string {
	m := params.PlaceholderMap()
	lines := []string{
		"*New order – Kordoba Farms*",
		"",
		"*Customer*",
		"Name: " + m["name"],
		"Phone: " + m["phone"],
		"Address: " + m["address"],
	}
	if m["email"] != "" {
		lines = append(lines, "Email: "+m["email"])
	}
	lines = append(lines,
		"",
		"*Order*",
		"• Product: "+m["productLabel"],
		"• Occasion: "+m["purpose"],
		"• Slaughter date: "+m["slaughterDate"],
		"• Distribution: "+m["distributionType"],
		"• "+m["weightLine"],
		"• Special cut: "+m["specialCut"],
		"• Order includes: "+m["orderIncludes"],
		"• Video proof: "+m["videoProof"],
	)
	if m["note"] != "" {
		lines = append(lines, "• Note: "+m["note"])
	}
	lines = append(lines,
		"",
		"*Total: "+m["priceRange"]+" (based on final weight)*",
	)
	return strings.Join(lines, "\n")
}

// ComposeOrderMessage renders the order message: the stored template when one
// is set, otherwise the built-in preset of the active theme (ramadan and eid
// themes carry their own preset), otherwise the default layout.
func (s *WhatsAppService) ComposeOrderMessage(theme, storedTemplate string, params OrderMessageParams) string {
	if t := strings.TrimSpace(storedTemplate); t != "" {
		return ApplyTemplate(t, params)
	}
	if preset, ok := TemplatePreset(theme); ok && theme != "default" {
		log.Printf("[WhatsApp] No stored template, using %s preset", theme)
		return ApplyTemplate(preset.Template, params)
	}
	return BuildOrderMessage(params)
}

// BuildCartMessage renders the multi-item order layout used when a whole cart
// is sent at once. purposeLabels and distLabels translate the raw selection
// keys; raw keys pass through when no label is present.
func BuildCartMessage(items []cart.LineItem, purposeLabels, distLabels map[string]string, hint string) string {
	lines := []string{
		"*New order – Kordoba Farms*",
		"",
		fmt.Sprintf("*Items (%d)*", len(items)),
	}
	for i, item := range items {
		purpose := item.Occasion
		if label, ok := purposeLabels[item.Occasion]; ok {
			purpose = label
		}
		dist := item.Distribution
		if label, ok := distLabels[item.Distribution]; ok {
			dist = label
		}
		slaughterDate := item.SlaughterDate
		if slaughterDate == "" {
			slaughterDate = "TBD"
		}
		specialCut := item.SpecialCutLabel
		if specialCut == "" {
			specialCut = "—"
		}
		lines = append(lines,
			"",
			fmt.Sprintf("*%d. %s*", i+1, item.ProductLabel),
			"Occasion: "+purpose,
			"Slaughter date: "+slaughterDate,
			"Distribution: "+dist,
			"Cut: "+specialCut,
			"Price: "+utils.FormatPriceRange(item.MinPrice, item.MaxPrice, ""),
			"Video proof: "+yesNo(item.VideoProof),
			"Includes: "+orderIncludes(item.IncludeHead, item.IncludeStomach, item.IncludeIntestines),
		)
		if note := strings.TrimSpace(item.Note); note != "" {
			lines = append(lines, "Note: "+note)
		}
	}
	lines = append(lines, "", hint)
	return strings.Join(lines, "\n")
}

// Link builds the click-to-chat URL carrying the message as the text query
// parameter. baseLink overrides the configured fallback when non-empty.
func (s *WhatsAppService) Link(baseLink, message string) string {
	base := strings.TrimSpace(baseLink)
	if base == "" {
		base = s.fallbackLink
	}
	base = strings.TrimSuffix(base, "/")

	separator := "?"
	if strings.Contains(base, "?") {
		separator = "&"
	}
	// wa.me expects %20 for spaces, not the form-encoding plus sign.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return base + separator + "text=" + encoded
}
