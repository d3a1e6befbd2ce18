package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricettario/backend/internal/model"
	"github.com/ricettario/backend/internal/testhelpers"
)

func TestSeedCreatesOwnerBeforeRecipes(t *testing.T) {
	db := testhelpers.SetupSQLiteDB(t)

	require.NoError(t, seed(context.Background(), db))

	var users []model.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 1)

	var recipes []model.Recipe
	require.NoError(t, db.Find(&recipes).Error)
	require.Len(t, recipes, 2)
	for _, r := range recipes {
		assert.Equal(t, users[0].ID, r.UserID, "every seeded recipe belongs to the seed user")
	}
}
