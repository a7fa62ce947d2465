package services

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferCRUD(t *testing.T) {
	store := newTestStore(t)
	svc := NewOfferService(store)
	ctx := context.Background()

	offers, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)

	created, err := svc.Create(ctx, OfferInput{Name: "Basic", Price: 10, DurationDays: 30, ExternalPlanID: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.Update(ctx, created.ID, OfferInput{Name: "Basic+", Price: 12, DurationDays: 30, ExternalPlanID: 100})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Basic+", updated.Name)
	assert.Equal(t, float64(12), updated.Price)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}

func TestOfferIDsNeverReused(t *testing.T) {
	store := newTestStore(t)
	svc := NewOfferService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, OfferInput{Name: "A", Price: 10, DurationDays: 30, ExternalPlanID: 1})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, first.ID))

	second, err := svc.Create(ctx, OfferInput{Name: "B", Price: 10, DurationDays: 30, ExternalPlanID: 2})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func TestOfferValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewOfferService(store)
	ctx := context.Background()

	tests := []struct {
		name string
		in   OfferInput
	}{
		{"missing name", OfferInput{Price: 10, DurationDays: 30, ExternalPlanID: 1}},
		{"zero price", OfferInput{Name: "A", Price: 0, DurationDays: 30, ExternalPlanID: 1}},
		{"negative price", OfferInput{Name: "A", Price: -5, DurationDays: 30, ExternalPlanID: 1}},
		{"zero duration", OfferInput{Name: "A", Price: 10, DurationDays: 0, ExternalPlanID: 1}},
		{"missing plan id", OfferInput{Name: "A", Price: 10, DurationDays: 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}

	// Nothing was committed.
	offers, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestOfferUpdateNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewOfferService(store)
	ctx := context.Background()

	_, err := svc.Update(ctx, 42, OfferInput{Name: "A", Price: 10, DurationDays: 30, ExternalPlanID: 1})
	assert.ErrorIs(t, err, ErrOfferNotFound)

	err = svc.Delete(ctx, 42)
	assert.ErrorIs(t, err, ErrOfferNotFound)
}
