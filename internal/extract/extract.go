// Package extract pulls structured fields out of free-text deal listings.
package extract

import (
	"regexp"
	"strings"
)

var (
	priceRe  = regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`)
	dealIDRe = regexp.MustCompile(`/f/(\d+)`)
)

// Price returns the first currency-prefixed amount in the title, e.g.
// "$24.99" or "$1,299.00", or "" when none is present.
//
// Known gap: when a title carries both an original and a sale price only the
// first occurrence is captured, and the RSS path leaves OriginalPrice empty.
// Rows imported from the sheet carry both prices explicitly.
func Price(title string) string {
	return priceRe.FindString(title)
}

// Store returns the canonical store label detected from the title, or ""
// when no known retailer token appears.
func Store(title string) string {
	t := strings.ToLower(title)
	if strings.Contains(t, "prime") || strings.Contains(t, "amazon") {
		return "Amazon"
	}
	return ""
}

// DealID derives the stable deal identifier from a forum link, e.g.
// "https://slickdeals.net/f/16123456-..." -> "slickdeals-f16123456".
// Returns "" when the link carries no /f/<digits> segment; the merge engine
// then falls back to title identity alone.
func DealID(link string) string {
	m := dealIDRe.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return "slickdeals-f" + m[1]
}
