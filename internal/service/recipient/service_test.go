package recipient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func newService() *recipient.Service {
	return recipient.NewService(recipient.NewRepository(store.NewMemoryStore()))
}

func TestSubscribe(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	rec, err := svc.Subscribe(ctx, "  Student@Example.EDU ")
	require.NoError(t, err)
	assert.Equal(t, "student@example.edu", rec.Email, "addresses are normalized")
	assert.NotEmpty(t, rec.ID)
}

func TestSubscribeInvalid(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	for _, email := range []string{"", "no-at-sign", "@example.edu", "trailing@"} {
		_, err := svc.Subscribe(ctx, email)
		assert.ErrorIs(t, err, recipient.ErrInvalidEmail, "email %q", email)
	}
}

func TestSubscribeDuplicate(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "student@example.edu")
	require.NoError(t, err)

	// Same address, different case and padding.
	_, err = svc.Subscribe(ctx, " STUDENT@example.edu")
	assert.ErrorIs(t, err, recipient.ErrDuplicate)

	recs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestUnsubscribe(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "student@example.edu")
	require.NoError(t, err)

	require.NoError(t, svc.Unsubscribe(ctx, "Student@Example.edu"))

	recs, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	assert.ErrorIs(t, svc.Unsubscribe(ctx, "student@example.edu"), recipient.ErrNotFound)
}

func TestAddresses(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Subscribe(ctx, "a@example.edu")
	require.NoError(t, err)
	_, err = svc.Subscribe(ctx, "b@example.edu")
	require.NoError(t, err)

	addrs, err := svc.Addresses(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a@example.edu", "b@example.edu"}, addrs)
}
