package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/africamarket/africa-market-api/internal/domain/order"
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/africamarket/africa-market-api/internal/models"
)

func seedStatus(t *testing.T, initial domain.Status) (*fakeRepo, *fakeNotifier, *UpdateStatus) {
	t.Helper()

	repo := newFakeRepo()
	repo.users[1] = &models.User{ID: 1, Username: "amal", Email: "amal@example.com"}
	repo.orders[5] = &models.Order{ID: 5, UserID: 1, Status: string(initial)}

	notifier := &fakeNotifier{}
	return repo, notifier, NewUpdateStatus(repo, notifier)
}

func TestUpdateStatusPersists(t *testing.T) {
	t.Parallel()

	repo, notifier, uc := seedStatus(t, domain.StatusDelivering)

	o, err := uc.Execute(context.Background(), 5, "shipped")
	require.NoError(t, err)
	require.Equal(t, "shipped", o.Status)
	require.Equal(t, "shipped", repo.orders[5].Status)
	require.Equal(t, 0, notifier.deliveries)
}

func TestUpdateStatusReturnsStoredRow(t *testing.T) {
	t.Parallel()

	repo, _, uc := seedStatus(t, domain.StatusDelivering)

	o, err := uc.Execute(context.Background(), 5, "shipped")
	require.NoError(t, err)

	// The returned order is the re-read row, timestamps included.
	require.False(t, o.UpdatedAt.IsZero())
	require.Equal(t, repo.orders[5].UpdatedAt, o.UpdatedAt)
}

func TestUpdateStatusInvalidValueLeavesOrderUntouched(t *testing.T) {
	t.Parallel()

	repo, _, uc := seedStatus(t, domain.StatusDelivering)

	_, err := uc.Execute(context.Background(), 5, "refunded")
	require.Error(t, err)
	require.Equal(t, "invalid_status", httperr.BusinessCode(err))
	require.Equal(t, string(domain.StatusDelivering), repo.orders[5].Status)
}

func TestUpdateStatusTerminalGuard(t *testing.T) {
	t.Parallel()

	repo, _, uc := seedStatus(t, domain.StatusCancelled)

	_, err := uc.Execute(context.Background(), 5, "shipped")
	require.Error(t, err)
	require.Equal(t, "invalid_transition", httperr.BusinessCode(err))
	require.Equal(t, string(domain.StatusCancelled), repo.orders[5].Status)
}

func TestUpdateStatusDeliveredMailsOnce(t *testing.T) {
	t.Parallel()

	repo, notifier, uc := seedStatus(t, domain.StatusDelivering)

	o, err := uc.Execute(context.Background(), 5, "delivered")
	require.NoError(t, err)
	require.Equal(t, "delivered", o.Status)
	require.Equal(t, 1, notifier.deliveries)

	// Replaying the update is a success no-op and sends nothing more.
	o, err = uc.Execute(context.Background(), 5, "delivered")
	require.NoError(t, err)
	require.Equal(t, "delivered", o.Status)
	require.Equal(t, "delivered", repo.orders[5].Status)
	require.Equal(t, 1, notifier.deliveries)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	t.Parallel()

	_, _, uc := seedStatus(t, domain.StatusDelivering)

	_, err := uc.Execute(context.Background(), 404, "shipped")
	require.Error(t, err)
}
