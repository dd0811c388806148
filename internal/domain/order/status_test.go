package order

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/africamarket/africa-market-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{
		"pending", "processing", "shipped", "delivering", "delivered", "cancelled",
	} {
		s, err := ParseStatus(raw)
		require.NoError(t, err, raw)
		require.Equal(t, Status(raw), s)
	}

	for _, raw := range []string{"", "refunded", "DELIVERED", "shipped "} {
		_, err := ParseStatus(raw)
		require.Error(t, err, raw)
		require.Equal(t, "invalid_status", httperr.BusinessCode(err))
	}
}

func TestInitialStatus(t *testing.T) {
	t.Parallel()

	require.Equal(t, StatusDelivering, InitialStatus())
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	// Non-terminal states move freely within the whitelist.
	require.NoError(t, CanTransition(StatusPending, StatusShipped))
	require.NoError(t, CanTransition(StatusDelivering, StatusDelivered))
	require.NoError(t, CanTransition(StatusShipped, StatusCancelled))

	// Repeating the current status is a no-op, terminal or not.
	require.NoError(t, CanTransition(StatusDelivered, StatusDelivered))
	require.NoError(t, CanTransition(StatusCancelled, StatusCancelled))

	// No way out of a terminal state.
	for _, to := range []Status{StatusPending, StatusDelivering, StatusCancelled} {
		err := CanTransition(StatusDelivered, to)
		require.Error(t, err)
		require.Equal(t, "invalid_transition", httperr.BusinessCode(err))
	}
	err := CanTransition(StatusCancelled, StatusDelivered)
	require.Error(t, err)
	require.Equal(t, "invalid_transition", httperr.BusinessCode(err))
}

func TestNotifyDelivery(t *testing.T) {
	t.Parallel()

	require.True(t, NotifyDelivery(StatusDelivering, StatusDelivered))
	require.True(t, NotifyDelivery(StatusShipped, StatusDelivered))

	// A replayed "delivered" must not mail the customer again.
	require.False(t, NotifyDelivery(StatusDelivered, StatusDelivered))
	require.False(t, NotifyDelivery(StatusDelivering, StatusShipped))
	require.False(t, NotifyDelivery(StatusDelivered, StatusCancelled))
}
