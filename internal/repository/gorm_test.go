package repository

import (
	"context"
	"testing"

	"postboard/internal/models"
	"postboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{Name: "Ann", Email: "ann@x.com", Password: "digest"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	t.Run("GetByID", func(t *testing.T) {
		found, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ann", found.Name)
		assert.Equal(t, "digest", found.Password)
	})

	t.Run("GetByID Missing", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "missing")
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("GetByEmail", func(t *testing.T) {
		found, err := repo.GetByEmail(ctx, "ann@x.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)

		none, err := repo.GetByEmail(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		err := repo.Create(ctx, &models.User{Name: "Other", Email: "ann@x.com", Password: "digest"})
		assert.True(t, models.IsCode(err, models.CodeConflict))

		var count int64
		require.NoError(t, db.Model(&models.User{}).Where("email = ?", "ann@x.com").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestPostRepository(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	first := &models.Post{Title: "First", Body: "B1", Image: "a.png", UserID: "owner-1"}
	second := &models.Post{Title: "Second", Body: "B2", UserID: "owner-2"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	t.Run("List Oldest First", func(t *testing.T) {
		posts, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, first.ID, posts[0].ID)
		assert.Equal(t, second.ID, posts[1].ID)
	})

	t.Run("Update Keeps Owner", func(t *testing.T) {
		update := &models.Post{ID: first.ID, Title: "Edited", Body: "", Image: "", UserID: "intruder"}
		require.NoError(t, repo.Update(ctx, update))

		found, err := repo.GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Edited", found.Title)
		assert.Equal(t, "", found.Body)
		assert.Equal(t, "", found.Image)
		assert.Equal(t, "owner-1", found.UserID)
	})

	t.Run("Update Missing", func(t *testing.T) {
		err := repo.Update(ctx, &models.Post{ID: "missing", Title: "x"})
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, second.ID))

		_, err := repo.GetByID(ctx, second.ID)
		assert.True(t, models.IsCode(err, models.CodeNotFound))

		err = repo.Delete(ctx, second.ID)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})
}

func TestPostRepositoryListEmpty(t *testing.T) {
	repo := NewPostRepository(testutil.NewSQLiteDB(t))

	posts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestRepositoryReportsClosedDatabase(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = NewPostRepository(db).List(context.Background())
	assert.True(t, models.IsCode(err, models.CodeInternal))

	err = NewUserRepository(db).Create(context.Background(), &models.User{Email: "a@b.c"})
	assert.True(t, models.IsCode(err, models.CodeInternal))
}
