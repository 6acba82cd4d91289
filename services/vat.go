package services

import (
	"math"
	"strings"
)

// DefaultVATPercent is the standard French VAT rate.
const DefaultVATPercent = 20.0

// QuoteTotals splits a VAT-inclusive quote total. Catalogue prices are TTC,
// so the HT amount is derived from the total and not the other way round.
type QuoteTotals struct {
	TotalHT    float64
	VATPercent float64
	VATAmount  float64 // TotalTTC - TotalHT
	TotalTTC   float64
}

// CalcQuoteTotals derives the HT amount and the VAT share of totalTTC. The HT
// amount is rounded to the cent so that HT + VAT always equals TTC.
func CalcQuoteTotals(totalTTC, vatPercent float64) QuoteTotals {
	if vatPercent < 0 {
		vatPercent = 0
	}
	totalHT := roundCents(totalTTC / (1 + vatPercent/100))
	return QuoteTotals{
		TotalHT:    totalHT,
		VATPercent: vatPercent,
		VATAmount:  roundCents(totalTTC - totalHT),
		TotalTTC:   totalTTC,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// AmountToWords spells out a euro amount in French, as printed under the
// total of a quote.
// Example: 1234.56 → "mille deux cent trente-quatre euros et cinquante-six centimes"
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "moins " + AmountToWords(-amount)
	}

	totalCents := int64(math.Round(amount * 100))
	euros, cents := totalCents/100, totalCents%100

	var b strings.Builder
	switch {
	case euros == 0:
		b.WriteString("zéro euro")
	case euros == 1:
		b.WriteString("un euro")
	case euros >= 1_000_000 && euros%1_000_000 == 0:
		b.WriteString(integerToFrench(euros) + " d'euros")
	default:
		b.WriteString(integerToFrench(euros) + " euros")
	}

	if cents > 0 {
		b.WriteString(" et " + integerToFrench(cents) + " centime")
		if cents > 1 {
			b.WriteString("s")
		}
	}
	return b.String()
}

// integerToFrench spells n > 0 using the traditional rules: "et" in 21 to 71,
// hyphens below one hundred, plural "cents"/"quatre-vingts" only at the end
// of the number or before a noun (million, milliard).
func integerToFrench(n int64) string {
	var parts []string

	scales := []struct {
		value int64
		noun  string
	}{
		{1_000_000_000, "milliard"},
		{1_000_000, "million"},
	}
	for _, s := range scales {
		if n >= s.value {
			count := n / s.value
			word := s.noun
			if count > 1 {
				word += "s"
			}
			parts = append(parts, under1000(count, true)+" "+word)
			n %= s.value
		}
	}

	if n >= 1000 {
		thousands := n / 1000
		if thousands == 1 {
			parts = append(parts, "mille")
		} else {
			parts = append(parts, under1000(thousands, false)+" mille")
		}
		n %= 1000
	}

	if n > 0 {
		parts = append(parts, under1000(n, true))
	}

	return strings.Join(parts, " ")
}

// under1000 spells 1 <= n < 1000. final reports whether the word may take
// its plural mark.
func under1000(n int64, final bool) string {
	hundreds, rest := n/100, n%100
	var word string
	switch {
	case hundreds == 1:
		word = "cent"
	case hundreds > 1:
		word = frUnits[hundreds] + " cent"
		if rest == 0 && final {
			word += "s"
		}
	}

	if rest == 0 {
		return word
	}
	tail := under100(rest, final)
	if word == "" {
		return tail
	}
	return word + " " + tail
}

func under100(n int64, final bool) string {
	if n < 20 {
		return frUnits[n]
	}

	tens, units := n/10, n%10
	switch tens {
	case 7:
		if units == 1 {
			return "soixante et onze"
		}
		return "soixante-" + frUnits[10+units]
	case 8:
		if units == 0 {
			if final {
				return "quatre-vingts"
			}
			return "quatre-vingt"
		}
		return "quatre-vingt-" + frUnits[units]
	case 9:
		return "quatre-vingt-" + frUnits[10+units]
	}

	switch units {
	case 0:
		return frTens[tens]
	case 1:
		return frTens[tens] + " et un"
	}
	return frTens[tens] + "-" + frUnits[units]
}

var frUnits = []string{
	"zéro", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
	"dix-sept", "dix-huit", "dix-neuf",
}

var frTens = []string{
	"", "", "vingt", "trente", "quarante", "cinquante", "soixante",
}
