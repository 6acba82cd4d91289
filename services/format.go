package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// thousandsSep is the non-breaking space French notation groups digits with.
const thousandsSep = "\u00a0"

// FormatEUR formats an amount in French euro notation: thousands grouped by
// a non-breaking space, a decimal comma and a trailing euro sign
// (e.g. 1 234,56 €). The result always includes exactly 2 decimal places.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)

	result := applyThousandsGrouping(parts[0]) + "," + parts[1] + thousandsSep + "€"
	if negative && strings.Trim(raw, "0.") != "" {
		result = "-" + result
	}
	return result
}

// applyThousandsGrouping inserts the separator every 3 digits from the right.
func applyThousandsGrouping(s string) string {
	if len(s) <= 3 {
		return s
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	return strings.Join(groups, thousandsSep)
}

// formatQty returns a string representation of the quantity value.
// Whole numbers are formatted without decimals; fractional values get 2 decimal places.
func formatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}

// QuoteFilename builds the download name of a quote file, e.g.
// "devis-Dupont-Helene.pdf". Accents are stripped and any other character
// outside [A-Za-z0-9_-] becomes a dash.
func QuoteFilename(form IntakeForm, ext string) string {
	name := sanitizeFilename(strings.TrimSpace(form.LastName) + "-" + strings.TrimSpace(form.FirstName))
	if strings.Trim(name, "-") == "" {
		return "devis." + ext
	}
	return "devis-" + name + "." + ext
}

func sanitizeFilename(s string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		stripped = s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, stripped)
}
