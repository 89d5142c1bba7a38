package repository_test

import (
	"context"
	"testing"

	"yumi/domain"
	"yumi/services/marketplace/repository"
	"yumi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func mustDate(t *testing.T, s string) datatypes.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestAvailabilityCreateIfAbsentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	expert := testutil.CreateUser(t, db, domain.RoleExpert)
	repo := repository.NewAvailabilityRepository(db)

	slot := func() *domain.ExpertAvailability {
		return &domain.ExpertAvailability{
			ExpertID:      expert.ID,
			AvailableDate: mustDate(t, "2026-02-20"),
			AvailableTime: "10:00",
		}
	}

	first, created, err := repo.CreateIfAbsent(ctx, slot())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotZero(t, first.ID)

	second, created, err := repo.CreateIfAbsent(ctx, slot())
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&domain.ExpertAvailability{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAvailabilityCreateUnknownExpert(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := repository.NewAvailabilityRepository(db)

	_, _, err := repo.CreateIfAbsent(context.Background(), &domain.ExpertAvailability{
		ExpertID:      999,
		AvailableDate: mustDate(t, "2026-02-20"),
		AvailableTime: "10:00",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAvailabilityListOrderedByDateThenTime(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	expert := testutil.CreateUser(t, db, domain.RoleExpert)
	other := testutil.CreateUser(t, db, domain.RoleExpert)
	repo := repository.NewAvailabilityRepository(db)

	for _, s := range []struct{ date, time string }{
		{"2026-02-21", "09:00"},
		{"2026-02-20", "14:00"},
		{"2026-02-20", "10:00"},
	} {
		_, _, err := repo.CreateIfAbsent(ctx, &domain.ExpertAvailability{
			ExpertID: expert.ID, AvailableDate: mustDate(t, s.date), AvailableTime: s.time,
		})
		require.NoError(t, err)
	}
	_, _, err := repo.CreateIfAbsent(ctx, &domain.ExpertAvailability{
		ExpertID: other.ID, AvailableDate: mustDate(t, "2026-01-01"), AvailableTime: "08:00",
	})
	require.NoError(t, err)

	slots, err := repo.ListByExpert(ctx, expert.ID)
	require.NoError(t, err)
	require.Len(t, slots, 3)

	got := make([]string, 0, len(slots))
	for _, s := range slots {
		got = append(got, domain.FormatDate(s.AvailableDate)+" "+s.AvailableTime)
	}
	assert.Equal(t, []string{"2026-02-20 10:00", "2026-02-20 14:00", "2026-02-21 09:00"}, got)
}

func TestAvailabilityDelete(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	expert := testutil.CreateUser(t, db, domain.RoleExpert)
	repo := repository.NewAvailabilityRepository(db)

	slot, _, err := repo.CreateIfAbsent(ctx, &domain.ExpertAvailability{
		ExpertID: expert.ID, AvailableDate: mustDate(t, "2026-02-20"), AvailableTime: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, slot.ID))
	assert.ErrorIs(t, repo.Delete(ctx, slot.ID), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 999999), domain.ErrNotFound)
}
