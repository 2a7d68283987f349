package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wxbrief/internal/models/request_models"
	"wxbrief/pkg/utils"
)

func TestCreateFlightPlan_UppercasesICAOCodes(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewFlightPlanService(repo)
	owner := uuid.New()

	planID, err := svc.CreateFlightPlan(context.Background(), owner, request_models.CreateFlightPlanRequest{
		Origin:        "kjfk",
		Destination:   "klax",
		Alternates:    []string{"kbur", "kvny"},
		DepartureTime: time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, planID)

	require.Len(t, repo.plans, 1)
	stored := repo.plans[0]
	assert.Equal(t, "KJFK", stored.Origin)
	assert.Equal(t, "KLAX", stored.Destination)
	assert.Equal(t, []string{"KBUR", "KVNY"}, []string(stored.Alternates))
	assert.Equal(t, owner, stored.UserID)
}

func TestCreateFlightPlan_StoreFailure(t *testing.T) {
	repo := &fakePlanRepo{insertErr: assert.AnError}
	svc := NewFlightPlanService(repo)

	_, err := svc.CreateFlightPlan(context.Background(), uuid.New(), request_models.CreateFlightPlanRequest{
		Origin:        "KJFK",
		Destination:   "KLAX",
		DepartureTime: time.Now().UTC(),
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}

func TestGetRecentPlans_EmptyForNewUser(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewFlightPlanService(repo)

	plans, err := svc.GetRecentPlans(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, plans)
	assert.NotNil(t, plans) // serializes as [], not null
}

func TestGetRecentPlans_NewestFirstAndScopedToOwner(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewFlightPlanService(repo)
	owner := uuid.New()
	stranger := uuid.New()

	for _, req := range []struct {
		user   uuid.UUID
		origin string
	}{
		{owner, "kjfk"},
		{owner, "kbos"},
		{stranger, "egll"},
		{owner, "kord"},
	} {
		_, err := svc.CreateFlightPlan(context.Background(), req.user, request_models.CreateFlightPlanRequest{
			Origin:        req.origin,
			Destination:   "klax",
			DepartureTime: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	plans, err := svc.GetRecentPlans(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "KORD", plans[0].Origin)
	assert.Equal(t, "KBOS", plans[1].Origin)
	assert.Equal(t, "KJFK", plans[2].Origin)
}
