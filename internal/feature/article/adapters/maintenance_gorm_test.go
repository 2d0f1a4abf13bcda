package adapters

import (
	"context"
	"testing"

	"blog_backend/internal/feature/article/domain/entity"
	authentity "blog_backend/internal/feature/auth/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceGorm_PurgeOrphans(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewArticleGorm(db)
	jake := seedUser(t, db, "jake")
	jane := seedUser(t, db, "jane")
	bob := seedUser(t, db, "bob")

	kept := seedArticle(t, repo, jake, "kept", base)
	gone := seedArticle(t, repo, jake, "gone", base)

	require.NoError(t, repo.AddComment(ctx, &entity.Comment{Body: "on kept by bob", ArticleID: kept.ID, AuthorID: &bob}))
	require.NoError(t, repo.AddComment(ctx, &entity.Comment{Body: "on kept by jane", ArticleID: kept.ID, AuthorID: &jane}))
	require.NoError(t, repo.AddComment(ctx, &entity.Comment{Body: "on gone", ArticleID: gone.ID, AuthorID: &jane}))
	for _, u := range []uint{jane, bob} {
		_, err := repo.Favorite(ctx, u, kept.ID)
		require.NoError(t, err)
		_, err = repo.Favorite(ctx, u, gone.ID)
		require.NoError(t, err)
	}

	require.NoError(t, repo.Delete(ctx, gone.ID))
	require.NoError(t, db.Delete(&authentity.User{}, bob).Error)

	report, err := NewMaintenanceGorm(db).PurgeOrphans(ctx)

	require.NoError(t, err)
	assert.EqualValues(t, 1, report.Comments)
	assert.EqualValues(t, 3, report.Favorites, "two edges on the deleted article, one from the deleted user")
	assert.EqualValues(t, 1, report.DetachedComments)
	assert.EqualValues(t, 1, report.RecountedArticles)

	got, err := repo.FindBySlug(ctx, "kept")
	require.NoError(t, err)
	assert.Equal(t, 1, got.FavoriteCount)
	assert.Equal(t, 1, countEdges(t, db, kept.ID))
	require.Len(t, got.Comments, 2)
	assert.Nil(t, got.Comments[0].AuthorID, "comment by the deleted user is detached")
	assert.Nil(t, got.Comments[0].Author)
	assert.Equal(t, "jane", got.Comments[1].Author.Username)

	again, err := NewMaintenanceGorm(db).PurgeOrphans(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Comments)
	assert.Zero(t, again.Favorites)
	assert.Zero(t, again.DetachedComments)
}
