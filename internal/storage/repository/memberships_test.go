package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/gym-membership/internal/lib/pricing"
	"github.com/magabrotheeeer/gym-membership/internal/models"
)

func TestStorage_RenewMembership(t *testing.T) {
	storage := setupTestDatabase(t)
	factory := newTestDataFactory(t, storage)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	gold := factory.plan("Gold", 30, nil)
	silver := factory.plan("Silver", 20, nil)

	_, expired := factory.member("expired@example.com", gold.ID, now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))
	_, active := factory.member("active@example.com", gold.ID, now, now.AddDate(0, 1, 0))

	term, err := pricing.Quote(silver.Price, pricing.SixMonths, now)
	require.NoError(t, err)

	renew := func(id uuid.UUID) models.Membership {
		return models.Membership{
			ID:       id,
			From:     term.From,
			To:       term.To,
			Duration: pricing.SixMonths,
			Fee:      term.Fee,
			PlanID:   &silver.ID,
		}
	}

	t.Run("expired is renewed", func(t *testing.T) {
		require.NoError(t, storage.SetFeePaid(ctx, expired.ID, true))
		require.NoError(t, storage.RenewMembership(ctx, renew(expired.ID), now))

		got, err := storage.GetMembershipByID(ctx, expired.ID)
		require.NoError(t, err)
		assert.Equal(t, pricing.SixMonths, got.Duration)
		assert.InDelta(t, 96.0, got.Fee, 0.001)
		assert.False(t, got.IsFeePaid)
		require.NotNil(t, got.PlanID)
		assert.Equal(t, silver.ID, *got.PlanID)
		assert.WithinDuration(t, term.To, got.To, time.Second)
	})

	t.Run("active is rejected", func(t *testing.T) {
		err := storage.RenewMembership(ctx, renew(active.ID), now)
		assert.ErrorIs(t, err, models.ErrMembershipStillActive)
	})

	t.Run("second renewal loses", func(t *testing.T) {
		err := storage.RenewMembership(ctx, renew(expired.ID), now)
		assert.ErrorIs(t, err, models.ErrMembershipStillActive)
	})

	t.Run("missing", func(t *testing.T) {
		err := storage.RenewMembership(ctx, renew(uuid.New()), now)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestStorage_ExpiringBetween(t *testing.T) {
	storage := setupTestDatabase(t)
	factory := newTestDataFactory(t, storage)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	plan := factory.plan("Gold", 30, nil)
	_, soon := factory.member("soon@example.com", plan.ID, now.AddDate(0, -1, 0), now.Add(6*time.Hour))
	factory.member("later@example.com", plan.ID, now, now.AddDate(0, 1, 0))
	factory.member("past@example.com", plan.ID, now.AddDate(0, -2, 0), now.Add(-time.Hour))

	got, err := storage.ExpiringBetween(ctx, now, now.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, soon.ID, got[0].MembershipID)
	assert.Equal(t, "soon@example.com", got[0].Email)
	assert.Equal(t, "John Doe", got[0].MemberName)
	assert.Equal(t, "Gold", got[0].PlanName)

	all, err := storage.GetMemberships(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
