package entity

import (
	"testing"

	"blog_backend/internal/feature/article/domain"
	"blog_backend/internal/shared/apperr"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestEnsureOwner(t *testing.T) {
	t.Parallel()

	article := &Article{AuthorID: 7}

	tests := []struct {
		name    string
		owned   Owned
		actorID uint
		wantErr bool
	}{
		{"article author", article, 7, false},
		{"other user", article, 8, true},
		{"anonymous", article, 0, true},
		{"comment author", &Comment{AuthorID: ptr(uint(3))}, 3, false},
		{"comment other", &Comment{AuthorID: ptr(uint(3))}, 7, true},
		{"detached comment", &Comment{}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureOwner(tt.owned, tt.actorID)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrNotOwner)
			assert.ErrorIs(t, err, apperr.ErrUnauthorized)
		})
	}
}

func TestArticle_Comments(t *testing.T) {
	t.Parallel()

	a := &Article{Comments: []Comment{{ID: 1}, {ID: 2}, {ID: 3}}}

	i, ok := a.CommentIndex(2)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = a.CommentIndex(9)
	assert.False(t, ok)

	a.RemoveComment(i)
	assert.Equal(t, []Comment{{ID: 1}, {ID: 3}}, a.Comments)
}

func TestNewArticle(t *testing.T) {
	t.Parallel()

	a := NewArticle(4, Draft{Title: "Hello", Body: "b"}, "hello-abc123")

	assert.Equal(t, uint(4), a.AuthorID)
	assert.Equal(t, "hello-abc123", a.Slug)
	assert.NotNil(t, a.TagList)
	assert.Empty(t, a.TagList)
	assert.NotNil(t, a.Comments)
	assert.Zero(t, a.FavoriteCount)
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	base := func() *Article {
		return &Article{ID: 1, Slug: "s", Title: "old", Description: "d", Body: "b", TagList: []string{"go"}, AuthorID: 2}
	}

	t.Run("nil fields retained", func(t *testing.T) {
		a := base()
		changed := Patch{Body: ptr("new body")}.Apply(a)

		assert.False(t, changed)
		assert.Equal(t, "old", a.Title)
		assert.Equal(t, "d", a.Description)
		assert.Equal(t, "new body", a.Body)
		assert.Equal(t, []string{"go"}, a.TagList)
	})

	t.Run("title change keeps slug and author", func(t *testing.T) {
		a := base()
		Patch{Title: ptr("new title")}.Apply(a)

		assert.Equal(t, "new title", a.Title)
		assert.Equal(t, "s", a.Slug)
		assert.Equal(t, uint(2), a.AuthorID)
		assert.Equal(t, uint(1), a.ID)
	})

	t.Run("tag change reported", func(t *testing.T) {
		a := base()
		assert.True(t, Patch{TagList: ptr([]string{"go", "gin"})}.Apply(a))
		assert.False(t, Patch{TagList: ptr([]string{"go", "gin"})}.Apply(a))
		assert.True(t, Patch{TagList: ptr([]string{"gin", "go"})}.Apply(a), "order matters")
		assert.True(t, Patch{TagList: ptr([]string(nil))}.Apply(a))
		assert.Equal(t, []string{}, a.TagList)
		assert.False(t, Patch{TagList: ptr([]string{})}.Apply(a))
	})
}
