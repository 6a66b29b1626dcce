package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	markRx    = regexp.MustCompile(`[™®©]`)
	spaceRx   = regexp.MustCompile(`\s{2,}`)
	editionRx = regexp.MustCompile(`(?i)\b(deluxe|definitive|gold|ultimate|goty|complete|remastered|hd|bundle|collection|director'?s cut|edition)\b`)
)

// CleanTitle strips trademark/registration/copyright glyphs and collapses
// repeated whitespace. Idempotent.
func CleanTitle(name string) string {
	t := markRx.ReplaceAllString(name, "")
	t = spaceRx.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// StripEditionNoise removes a fixed vocabulary of edition/bundle words from a
// cleaned title ("Deluxe Edition", "GOTY", ...). If stripping would leave an
// empty title, the glyph-cleaned original is returned instead.
func StripEditionNoise(name string) string {
	t := CleanTitle(name)
	stripped := editionRx.ReplaceAllString(t, "")
	stripped = spaceRx.ReplaceAllString(stripped, " ")
	stripped = strings.Trim(stripped, " -–—:")
	if stripped == "" {
		return t
	}
	return stripped
}

// PriceString formats a price for display. An explicit flag ("Free",
// "Announced", ...) always wins. With no flag and no usable amount/currency
// pair the price is "Unavailable". USD renders as "$12.34", any other
// currency as "EUR 12.34".
func PriceString(amount *float64, currency string, flag string) string {
	if flag != "" {
		return flag
	}
	if amount == nil || currency == "" {
		return "Unavailable"
	}
	cur := strings.ToUpper(currency)
	if cur == "USD" {
		return fmt.Sprintf("$%.2f", *amount)
	}
	return fmt.Sprintf("%s %.2f", cur, *amount)
}

// LetterBucket returns the output partition for a title: its lower-cased
// first character when in a-z, otherwise the "_" catch-all.
func LetterBucket(name string) string {
	t := strings.TrimSpace(name)
	if t == "" {
		return "_"
	}
	ch := strings.ToLower(t[:1])
	if ch >= "a" && ch <= "z" {
		return ch
	}
	return "_"
}
