package gateway

import (
	"regexp"
	"strings"
)

var priceRe = regexp.MustCompile(`\$\d+`)

// DetectPrice extracts the first dollar-amount token from a reply, or ""
// when none is present.
func DetectPrice(text string) string {
	return priceRe.FindString(text)
}

// HasCurrencyMarker reports whether the reply mentions a price at all. This
// is the signal that moves an idle session into the agreement step.
func HasCurrencyMarker(text string) bool {
	return strings.Contains(text, "$") || strings.Contains(text, "دولار")
}
