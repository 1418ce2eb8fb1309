// Package normalize provides the pure text transforms shared by the sync
// pipeline: link canonicalization and the title key used for deduplication.
package normalize

import (
	"regexp"
	"strings"
)

// TrackingParam is the tracking parameter every outgoing deal link carries.
const TrackingParam = "sdtrk=bfsheet"

var (
	priceTokenRe  = regexp.MustCompile(`\$[\d,\.]+`)
	punctuationRe = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// Link canonicalizes a deal link so it carries the tracking parameter
// exactly once. Empty and whitespace-only input normalizes to "".
// Idempotent: Link(Link(l)) == Link(l).
func Link(raw string) string {
	link := strings.TrimSpace(raw)
	if link == "" {
		return ""
	}
	if strings.Contains(link, TrackingParam) {
		return link
	}
	if strings.Contains(link, "?") {
		return link + "&" + TrackingParam
	}
	return link + "?" + TrackingParam
}

// TitleKey reduces a title to a comparison key: lowercase, price tokens and
// punctuation removed, whitespace collapsed. Two captures of the same deal
// that differ only in casing or quoted price map to the same key. The key is
// never displayed.
func TitleKey(title string) string {
	key := strings.ToLower(title)
	key = priceTokenRe.ReplaceAllString(key, "")
	key = punctuationRe.ReplaceAllString(key, " ")
	key = whitespaceRe.ReplaceAllString(key, " ")
	return strings.TrimSpace(key)
}
