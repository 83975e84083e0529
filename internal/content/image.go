package content

import (
	"encoding/json"
	"strings"
)

// ResolveImageURL picks an image for the requested locale and occasion from a
// stored JSON map, most specific key first: "occasion:locale", then
// "occasion", then "locale", ending at the flat fallback URL. An empty map,
// invalid JSON or missing keys all fall through silently.
func ResolveImageURL(imageURL, imageURLByLocale, locale, occasion string) string {
	if imageURLByLocale == "" {
		return imageURL
	}

	var byLocale map[string]string
	if err := json.Unmarshal([]byte(imageURLByLocale), &byLocale); err != nil {
		return imageURL
	}

	loc := locale
	if loc == "" {
		loc = "en"
	}

	if occasion != "" {
		if v := strings.TrimSpace(byLocale[occasion+":"+loc]); v != "" {
			return v
		}
		if v := strings.TrimSpace(byLocale[occasion]); v != "" {
			return v
		}
	}
	if v := strings.TrimSpace(byLocale[loc]); v != "" {
		return v
	}

	return imageURL
}
