package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"wxbrief/internal/models/db_models"
)

// In-memory repository doubles. Insert assigns ids the way the database
// hooks would.

type fakeUserRepo struct {
	users     map[string]*db_models.User
	insertErr error
	findErr   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*db_models.User{}}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now().Unix()
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.users[email], nil
}

type fakePlanRepo struct {
	plans     []*db_models.FlightPlan
	nextStamp int64
	insertErr error
	findErr   error
	listErr   error
}

func (f *fakePlanRepo) Insert(ctx context.Context, plan *db_models.FlightPlan) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.nextStamp++
	plan.CreatedAt = f.nextStamp
	f.plans = append(f.plans, plan)
	return nil
}

func (f *fakePlanRepo) FindByIDForUser(ctx context.Context, planID uuid.UUID, userID uuid.UUID) (*db_models.FlightPlan, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, plan := range f.plans {
		if plan.ID == planID && plan.UserID == userID {
			return plan, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]db_models.FlightPlan, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db_models.FlightPlan
	for _, plan := range f.plans {
		if plan.UserID == userID {
			out = append(out, *plan)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt > out[j].CreatedAt
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeBriefingRepo struct {
	briefings []*db_models.Briefing
	insertErr error
}

func (f *fakeBriefingRepo) Insert(ctx context.Context, briefing *db_models.Briefing) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if briefing.ID == uuid.Nil {
		briefing.ID = uuid.New()
	}
	f.briefings = append(f.briefings, briefing)
	return nil
}
