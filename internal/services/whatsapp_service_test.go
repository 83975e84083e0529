package services

import (
	"strings"
	"testing"

	"github.com/example/kordoba/internal/cart"
)

func sampleParams() OrderMessageParams {
	return OrderMessageParams{
		Name:             "Aisha",
		Phone:            "+60123456789",
		Address:          "12 Jalan Melati, Shah Alam",
		ProductLabel:     "½ Goat",
		MinPrice:         400,
		MaxPrice:         600,
		SlaughterDate:    "2025-06-01",
		DistributionType: "Pickup",
		Purpose:          "personal",
		PurposeLabel:     "Personal",
		WeightSelection:  "as_is",
		SpecialCut:       "Leg cut",
		VideoProof:       false,
		Note:             "",
	}
}

func TestPlaceholderDerivations(t *testing.T) {
	p := sampleParams()
	m := p.PlaceholderMap()

	if m["priceRange"] != "RM400 – RM600" {
		t.Errorf("priceRange = %q", m["priceRange"])
	}
	if m["weightLine"] != "Weight: As is (standard)" {
		t.Errorf("weightLine = %q", m["weightLine"])
	}
	if m["orderIncludes"] != "—" {
		t.Errorf("orderIncludes = %q", m["orderIncludes"])
	}
	if m["videoProof"] != "No" {
		t.Errorf("videoProof = %q", m["videoProof"])
	}
	if m["purpose"] != "Personal" {
		t.Errorf("purpose = %q", m["purpose"])
	}

	p.SlaughterDate = ""
	p.SpecialCut = "  "
	p.IncludeHead = true
	p.IncludeIntestines = true
	p.VideoProof = true
	p.WeightLabel = "45 kg"
	m = p.PlaceholderMap()

	if m["slaughterDate"] != "TBD" {
		t.Errorf("empty date: slaughterDate = %q", m["slaughterDate"])
	}
	if m["specialCut"] != "—" {
		t.Errorf("blank cut: specialCut = %q", m["specialCut"])
	}
	if m["orderIncludes"] != "Head, Intestines" {
		t.Errorf("orderIncludes = %q", m["orderIncludes"])
	}
	if m["videoProof"] != "Yes" {
		t.Errorf("videoProof = %q", m["videoProof"])
	}
	if m["weightLine"] != "Weight: 45 kg" {
		t.Errorf("weightLine with label = %q", m["weightLine"])
	}
}

func TestWeightLineVariants(t *testing.T) {
	cases := []struct {
		selection, label, want string
	}{
		{"as_is", "", "Weight: As is (standard)"},
		{"", "", "Weight: As is (standard)"},
		{"range", "", "Weight: Weight range (contact us)"},
		{"w45", "", "Weight: w45"},
		{"w45", "45 kg", "Weight: 45 kg"},
	}
	for _, c := range cases {
		if got := weightLine(c.selection, c.label); got != c.want {
			t.Errorf("weightLine(%q, %q) = %q, want %q", c.selection, c.label, got, c.want)
		}
	}
}

func TestApplyTemplate(t *testing.T) {
	p := sampleParams()
	got := ApplyTemplate("Order for {{name}}: {{productLabel}}, total {{priceRange}}", p)
	want := "Order for Aisha: ½ Goat, total RM400 – RM600"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Unrecognized placeholders pass through untouched.
	got = ApplyTemplate("Hello {{name}}, ref {{orderNumber}}", p)
	if got != "Hello Aisha, ref {{orderNumber}}" {
		t.Errorf("unknown placeholder mangled: %q", got)
	}

	// Applying twice is a no-op once every placeholder is consumed.
	once := ApplyTemplate("{{name}} {{note}} {{specialCut}}", p)
	if twice := ApplyTemplate(once, p); twice != once {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}

func TestBuildOrderMessageOmitsEmptyLines(t *testing.T) {
	p := sampleParams()
	msg := BuildOrderMessage(p)

	if strings.Contains(msg, "Email:") {
		t.Error("email line present for empty email")
	}
	if strings.Contains(msg, "• Note:") {
		t.Error("note line present for empty note")
	}
	if !strings.Contains(msg, "• Special cut: Leg cut") {
		t.Errorf("missing cut line:\n%s", msg)
	}
	if !strings.Contains(msg, "*Total: RM400 – RM600 (based on final weight)*") {
		t.Errorf("missing total line:\n%s", msg)
	}

	p.Email = "aisha@example.com"
	p.Note = "call before arriving"
	msg = BuildOrderMessage(p)
	if !strings.Contains(msg, "Email: aisha@example.com") {
		t.Error("email line missing")
	}
	if !strings.Contains(msg, "• Note: call before arriving") {
		t.Error("note line missing")
	}
}

// With the ramadan theme active and no stored template, the built-in ramadan
// preset supplies the message body.
func TestComposeUsesThemePreset(t *testing.T) {
	svc := NewWhatsAppService("")
	msg := svc.ComposeOrderMessage("ramadan", "", sampleParams())
	if !strings.Contains(msg, "Ramadan Mubarak") {
		t.Errorf("ramadan preset not applied:\n%s", msg)
	}
	if strings.Contains(msg, "{{") {
		t.Errorf("unreplaced placeholder in preset output:\n%s", msg)
	}

	msg = svc.ComposeOrderMessage("eid", "", sampleParams())
	if !strings.Contains(msg, "Eid Mubarak") {
		t.Errorf("eid preset not applied:\n%s", msg)
	}

	// Stored template always wins over the theme preset.
	msg = svc.ComposeOrderMessage("ramadan", "Custom: {{name}}", sampleParams())
	if msg != "Custom: Aisha" {
		t.Errorf("stored template ignored: %q", msg)
	}

	// Default theme with no template falls to the default layout.
	msg = svc.ComposeOrderMessage("default", "", sampleParams())
	if !strings.HasPrefix(msg, "*New order – Kordoba Farms*") {
		t.Errorf("default layout not used:\n%s", msg)
	}
}

func TestTemplatePresets(t *testing.T) {
	presets := TemplatePresets()
	if len(presets) != 5 {
		t.Fatalf("preset count = %d, want 5", len(presets))
	}
	for _, id := range []string{"professional", "friendly", "ramadan", "eid", "minimal"} {
		if _, ok := TemplatePreset(id); !ok {
			t.Errorf("missing preset %s", id)
		}
	}
	if _, ok := TemplatePreset("nope"); ok {
		t.Error("unknown preset id resolved")
	}

	// Every preset must render without leftover placeholders.
	for _, preset := range presets {
		out := ApplyTemplate(preset.Template, sampleParams())
		if strings.Contains(out, "{{") {
			t.Errorf("preset %s leaves placeholders:\n%s", preset.ID, out)
		}
	}
}

func TestBuildCartMessage(t *testing.T) {
	items := []cart.LineItem{
		{
			ProductLabel:  "½ Goat",
			Occasion:      "personal",
			SlaughterDate: "2025-06-01",
			Distribution:  "pickup",
			MinPrice:      400,
			MaxPrice:      600,
			Note:          "  ",
		},
		{
			ProductLabel:    "Whole Sheep",
			Occasion:        "qurban",
			Distribution:    "donate",
			SpecialCutLabel: "Leg cut",
			MinPrice:        1250,
			MaxPrice:        1250,
			IncludeHead:     true,
			VideoProof:      true,
			Note:            "for the mosque",
		},
	}
	purposeLabels := map[string]string{"qurban": "Qurban", "personal": "Personal"}
	distLabels := map[string]string{"pickup": "Self pickup", "donate": "Donate"}

	msg := BuildCartMessage(items, purposeLabels, distLabels, "We will confirm via WhatsApp.")

	if !strings.Contains(msg, "*Items (2)*") {
		t.Errorf("missing item count:\n%s", msg)
	}
	if !strings.Contains(msg, "*1. ½ Goat*") || !strings.Contains(msg, "*2. Whole Sheep*") {
		t.Errorf("missing numbered items:\n%s", msg)
	}
	if !strings.Contains(msg, "Occasion: Personal") {
		t.Error("purpose label not applied")
	}
	if !strings.Contains(msg, "Slaughter date: TBD") {
		t.Error("missing date should render TBD")
	}
	if !strings.Contains(msg, "Cut: —") {
		t.Error("missing cut should render —")
	}
	if !strings.Contains(msg, "Price: RM1,250") {
		t.Errorf("collapsed price missing:\n%s", msg)
	}
	if strings.Contains(msg, "Note:  ") || strings.Count(msg, "Note:") != 1 {
		t.Errorf("blank note not skipped:\n%s", msg)
	}
	if !strings.HasSuffix(msg, "We will confirm via WhatsApp.") {
		t.Error("hint not appended")
	}
}

func TestLink(t *testing.T) {
	svc := NewWhatsAppService("")

	got := svc.Link("", "hello world")
	if got != DefaultWhatsAppLink+"?text=hello%20world" {
		t.Errorf("got %q", got)
	}

	got = svc.Link("https://wa.me/601111/", "a&b")
	if got != "https://wa.me/601111?text=a%26b" {
		t.Errorf("trailing slash or escaping wrong: %q", got)
	}

	// An existing query string switches the separator.
	got = svc.Link("https://wa.me/601111?lang=ms", "hi")
	if got != "https://wa.me/601111?lang=ms&text=hi" {
		t.Errorf("got %q", got)
	}
}
