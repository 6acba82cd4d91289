package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// formatQuoteReference constructs the reference string from its components.
func formatQuoteReference(year, sequence int) string {
	return fmt.Sprintf("DEV-%d-%04d", year, sequence)
}

// GenerateQuoteReference creates the next quote reference for the calendar
// year of now.
// Format: DEV-{year}-{sequence}, the sequence being 4-digit zero-padded and
// restarting every year. The next sequence follows the highest one in use, so
// deleting a form never frees its number for reuse by a later one.
func GenerateQuoteReference(app core.App, now time.Time) (string, error) {
	prefix := fmt.Sprintf("DEV-%d-", now.Year())

	existing, err := app.FindRecordsByFilter(
		"construction_forms",
		"reference ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("list quote references: %w", err)
	}

	highest := 0
	for _, r := range existing {
		suffix, ok := strings.CutPrefix(r.GetString("reference"), prefix)
		if !ok {
			continue
		}
		if seq, err := strconv.Atoi(suffix); err == nil && seq > highest {
			highest = seq
		}
	}

	return formatQuoteReference(now.Year(), highest+1), nil
}
