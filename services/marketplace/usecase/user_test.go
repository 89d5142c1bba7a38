package usecase_test

import (
	"context"
	"testing"

	"yumi/domain"
	"yumi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExpertIsActiveAndListed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	title := "Child psychologist"

	expert, err := f.users.CreateExpert(ctx, &domain.CreateExpertRequest{
		Name: "Dr. K", Email: "k@yumi.test", Password: "secret123", Title: &title,
	})
	require.NoError(t, err)
	assert.True(t, expert.IsActive)
	assert.Equal(t, domain.RoleExpert, expert.Role)

	// self-registered expert stays hidden until approved
	_, err = f.auth.Register(ctx, &domain.RegisterRequest{Name: "Dr. L", Email: "l@yumi.test", Password: "secret123", Role: "expert"})
	require.NoError(t, err)

	experts, err := f.users.ListExperts(ctx)
	require.NoError(t, err)
	require.Len(t, experts, 1)
	assert.Equal(t, expert.ID, experts[0].ID)
	require.NotNil(t, experts[0].Title)
	assert.Equal(t, title, *experts[0].Title)

	_, err = f.users.CreateExpert(ctx, &domain.CreateExpertRequest{Name: "Dup", Email: "K@yumi.test", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestDeleteUserHonoursHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	expert := testutil.CreateUser(t, f.db, domain.RoleExpert)
	parent := testutil.CreateUser(t, f.db, domain.RoleParent)
	lonely := testutil.CreateUser(t, f.db, domain.RoleParent)

	_, _, err := f.availability.Create(ctx, &domain.AvailabilityRequest{ExpertID: expert.ID, Date: "2026-02-20", Time: "10:00"})
	require.NoError(t, err)
	_, err = f.appointments.Book(ctx, bookingFor(expert.ID, parent.ID, "2026-02-20", "10:00"))
	require.NoError(t, err)

	assert.ErrorIs(t, f.users.DeleteUser(ctx, parent.ID), domain.ErrHasDependents)
	assert.NoError(t, f.users.DeleteUser(ctx, lonely.ID))
	assert.ErrorIs(t, f.users.DeleteUser(ctx, lonely.ID), domain.ErrNotFound)

	_, err = f.users.GetUser(ctx, lonely.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUsersRejectsUnknownRole(t *testing.T) {
	f := newFixture(t)
	role := domain.Role("nanny")

	_, err := f.users.ListUsers(context.Background(), domain.UserFilter{Role: &role})
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}
