package repository_test

import (
	"context"
	"testing"

	"yumi/domain"
	"yumi/services/marketplace/repository"
	"yumi/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildProfiles(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	repo := repository.NewChildRepository(db)
	parent := testutil.CreateUser(t, db, domain.RoleParent)
	other := testutil.CreateUser(t, db, domain.RoleParent)

	mia := &domain.ChildProfile{ParentID: parent.ID, Name: "Mia", Age: 3, Interests: "blocks"}
	require.NoError(t, repo.Create(ctx, mia))
	require.NoError(t, repo.Create(ctx, &domain.ChildProfile{ParentID: parent.ID, Name: "Leo", Age: 6}))
	require.NoError(t, repo.Create(ctx, &domain.ChildProfile{ParentID: other.ID, Name: "Zoe", Age: 1}))

	kids, err := repo.ListByParent(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "Mia", kids[0].Name)

	require.NoError(t, repo.Delete(ctx, mia.ID))
	assert.ErrorIs(t, repo.Delete(ctx, mia.ID), domain.ErrNotFound)

	assert.ErrorIs(t, repo.Create(ctx, &domain.ChildProfile{ParentID: 999, Name: "Ghost"}), domain.ErrNotFound)
}
