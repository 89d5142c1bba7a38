package usecase_test

import (
	"context"
	"testing"

	"yumi/domain"
	"yumi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDefaultsToActiveParent(t *testing.T) {
	f := newFixture(t)

	user, err := f.auth.Register(context.Background(), &domain.RegisterRequest{
		Name: "Ann", Email: " Ann@Yumi.TEST ", Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleParent, user.Role)
	assert.True(t, user.IsActive)
	assert.Equal(t, "ann@yumi.test", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)
}

func TestRegisterExpertWaitsForApproval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.auth.Register(ctx, &domain.RegisterRequest{
		Name: "Dr. K", Email: "k@yumi.test", Password: "secret123", Role: "Expert",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleExpert, user.Role)
	assert.False(t, user.IsActive)

	_, err = f.auth.Login(ctx, &domain.LoginRequest{Email: "k@yumi.test", Password: "secret123"})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)

	_, err = f.users.SetActive(ctx, user.ID, true)
	require.NoError(t, err)

	res, err := f.auth.Login(ctx, &domain.LoginRequest{Email: "k@yumi.test", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, res.User.ID)
}

func TestRegisterRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.auth.Register(ctx, &domain.RegisterRequest{Name: "Ann", Email: "ann@yumi.test", Password: "secret123"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  domain.RegisterRequest
		want error
	}{
		{"duplicate email any case", domain.RegisterRequest{Name: "Ann", Email: "ANN@yumi.test", Password: "secret123"}, domain.ErrEmailTaken},
		{"admin self registration", domain.RegisterRequest{Name: "Eve", Email: "eve@yumi.test", Password: "secret123", Role: "admin"}, domain.ErrInvalidRole},
		{"unknown role", domain.RegisterRequest{Name: "Eve", Email: "eve@yumi.test", Password: "secret123", Role: "nanny"}, domain.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.auth.Register(ctx, &tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err = f.auth.Register(ctx, &domain.RegisterRequest{Name: "Bob", Email: "bob", Password: "123"})
	assert.True(t, domain.IsValidation(err))
}

func TestLoginChecksCredentials(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parent := testutil.CreateUser(t, f.db, domain.RoleParent)

	res, err := f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: testutil.DefaultPassword})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	claims, err := f.tokens.VerifyToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, claims.UserID)
	assert.Equal(t, domain.RoleParent, claims.Role)

	_, err = f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &domain.LoginRequest{Email: "nobody@yumi.test", Password: "whatever"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parent := testutil.CreateUser(t, f.db, domain.RoleParent)

	_, err := f.users.SetActive(ctx, parent.ID, false)
	require.NoError(t, err)

	_, err = f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, domain.ErrAccountInactive)
}

func TestLoginThrottlesRepeatedFailures(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	parent := testutil.CreateUser(t, f.db, domain.RoleParent)

	for i := 0; i < 3; i++ {
		_, err := f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: "wrong"})
		require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	}

	_, err := f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: testutil.DefaultPassword})
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)

	require.NoError(t, f.limiter.Reset(ctx, parent.Email))
	_, err = f.auth.Login(ctx, &domain.LoginRequest{Email: parent.Email, Password: testutil.DefaultPassword})
	assert.NoError(t, err)
}
