package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/africamarket/africa-market-api/internal/models"
)

func TestFormatAddress(t *testing.T) {
	t.Parallel()

	full := &models.Address{
		StreetAddress: "12 Hamra Street",
		City:          "Beirut",
		State:         "Beirut",
		ZipCode:       "1103",
		Country:       "Lebanon",
	}
	require.Equal(t, "12 Hamra Street, Beirut, Beirut, 1103, Lebanon", FormatAddress(full))

	// Blank components drop out, no dangling separators.
	partial := &models.Address{
		StreetAddress: "12 Hamra Street",
		City:          "Beirut",
		Country:       "Lebanon",
	}
	require.Equal(t, "12 Hamra Street, Beirut, Lebanon", FormatAddress(partial))

	require.Equal(t, "", FormatAddress(nil))
	require.Equal(t, "", FormatAddress(&models.Address{}))
}
