package models

import "strings"

// Subcategory pairs a URL slug with its display label.
type Subcategory struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

// Subcategory groups shown on the Men/Women collection pages.
var MenSubcategories = []Subcategory{
	{Slug: "men-t-shirts", Label: "T-Shirts"},
	{Slug: "men-shirts", Label: "Shirts"},
	{Slug: "men-pants", Label: "Pants"},
	{Slug: "men-shorts", Label: "Shorts"},
	{Slug: "men-jackets", Label: "Jackets"},
	{Slug: "men-jerseys", Label: "Jerseys"},
	{Slug: "men-belts", Label: "Belts"},
	{Slug: "men-glasses", Label: "Glasses"},
	{Slug: "men-headwear", Label: "Headwear's"},
	{Slug: "men-socks", Label: "Socks"},
}

var WomenSubcategories = []Subcategory{
	{Slug: "women-tops", Label: "Tops"},
	{Slug: "women-bottoms", Label: "Bottoms"},
	{Slug: "women-dresses", Label: "Dresses"},
	{Slug: "women-jackets", Label: "Jackets"},
	{Slug: "women-swimwear", Label: "Swimwear"},
	{Slug: "women-jerseys", Label: "Jerseys"},
	{Slug: "women-belts", Label: "Belts"},
	{Slug: "women-glasses", Label: "Glasses"},
	{Slug: "women-headwear", Label: "Headwear's"},
	{Slug: "women-socks", Label: "Socks"},
}

// MatchesSubcategory reports whether a stored category label belongs to
// a subcategory slug, e.g. "Men - T-Shirts" matches "men-t-shirts".
// Stored categories are free text, so the slug is expanded into every
// plausible written variant (" - " vs " " separator, hyphens kept vs
// spaced) and checked by equality or containment. The containment
// fallback can false-positive on labels that merely embed a variant;
// that looseness is inherited from the storefront and kept as-is.
func MatchesSubcategory(category, slug string) bool {
	cat := strings.ToLower(strings.TrimSpace(category))
	slug = strings.ToLower(strings.TrimSpace(slug))

	gender := ""
	rest := slug
	if strings.HasPrefix(slug, "men-") {
		gender, rest = "men", slug[len("men-"):]
	} else if strings.HasPrefix(slug, "women-") {
		gender, rest = "women", slug[len("women-"):]
	}

	if gender != "" {
		spaced := strings.ReplaceAll(rest, "-", " ")
		variants := []string{
			gender + " - " + rest,   // "men - t-shirts"
			gender + " - " + spaced, // "men - t shirts"
			gender + " " + rest,     // "men t-shirts"
			gender + " " + spaced,   // "men t shirts"
		}
		for _, v := range variants {
			if cat == v || strings.Contains(cat, v) {
				return true
			}
		}
		return false
	}

	// Fallback for non-gendered slugs
	spaced := strings.ReplaceAll(slug, "-", " ")
	return cat == slug || cat == spaced ||
		strings.Contains(cat, slug) || strings.Contains(cat, spaced)
}
