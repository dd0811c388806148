package order

import (
	"strings"

	"github.com/africamarket/africa-market-api/internal/models"
)

// FormatAddress renders the canonical shipping snapshot persisted on
// the order: "street, city, state, zip, country", blanks skipped.
func FormatAddress(a *models.Address) string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{a.StreetAddress, a.City, a.State, a.ZipCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
