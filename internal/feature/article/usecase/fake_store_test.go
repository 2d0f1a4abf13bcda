package usecase

import (
	"context"
	"sort"
	"slices"
	"strings"
	"time"

	"blog_backend/internal/feature/article/domain"
	"blog_backend/internal/feature/article/domain/entity"
	authdomain "blog_backend/internal/feature/auth/domain"
	authentity "blog_backend/internal/feature/auth/domain/entity"
	"blog_backend/internal/shared/apperr"
)

// memStore is an in-memory ArticleRepository that counts calls per method.
type memStore struct {
	articles  map[uint]*entity.Article
	favorites map[[2]uint]bool // (user, article)
	users     map[uint]*authentity.User
	nextID    uint
	nextCID   uint
	epoch     time.Time
	calls     map[string]int
	failWith  map[string]error
}

var _ ArticleRepository = (*memStore)(nil)

func newMemStore(users ...*authentity.User) *memStore {
	m := &memStore{
		articles:  map[uint]*entity.Article{},
		favorites: map[[2]uint]bool{},
		users:     map[uint]*authentity.User{},
		epoch:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		calls:     map[string]int{},
		failWith:  map[string]error{},
	}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *memStore) hit(name string) error {
	m.calls[name]++
	return m.failWith[name]
}

func (m *memStore) tick() time.Time {
	m.nextCID++
	return m.epoch.Add(time.Duration(m.nextID*1000+m.nextCID) * time.Second)
}

func clone(a *entity.Article) *entity.Article {
	c := *a
	c.TagList = append([]string{}, a.TagList...)
	c.Comments = append([]entity.Comment{}, a.Comments...)
	if a.Author != nil {
		au := *a.Author
		c.Author = &au
	}
	return &c
}

func (m *memStore) author(id uint) *entity.Author {
	u := m.users[id]
	return &entity.Author{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt}
}

func (m *memStore) List(ctx context.Context, q Query) ([]entity.Article, int64, error) {
	if err := m.hit("List"); err != nil {
		return nil, 0, err
	}
	matched := []entity.Article{}
	for _, a := range m.articles {
		if q.Tag != "" && !slices.ContainsFunc(a.TagList, func(t string) bool { return strings.Contains(t, q.Tag) }) {
			continue
		}
		if q.AuthorIDs != nil && !containsID(q.AuthorIDs, a.AuthorID) {
			continue
		}
		if q.FavoritedBy != 0 && !m.favorites[[2]uint{q.FavoritedBy, a.ID}] {
			continue
		}
		matched = append(matched, *clone(a))
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	count := int64(len(matched))
	start := min(max(q.Offset, 0), len(matched))
	end := len(matched)
	if q.Limit > 0 {
		end = min(start+q.Limit, len(matched))
	}
	return matched[start:end], count, nil
}

func (m *memStore) FindBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	if err := m.hit("FindBySlug"); err != nil {
		return nil, err
	}
	for _, a := range m.articles {
		if a.Slug == slug {
			return clone(a), nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (m *memStore) Create(ctx context.Context, a *entity.Article) error {
	if err := m.hit("Create"); err != nil {
		return err
	}
	if _, ok := m.users[a.AuthorID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, existing := range m.articles {
		if existing.Slug == a.Slug {
			return domain.ErrSlugTaken
		}
	}
	m.nextID++
	a.ID = m.nextID
	a.CreatedAt = m.epoch.Add(time.Duration(a.ID) * time.Hour)
	a.UpdatedAt = a.CreatedAt
	a.Author = m.author(a.AuthorID)
	m.articles[a.ID] = clone(a)
	return nil
}

func (m *memStore) Update(ctx context.Context, a *entity.Article) error {
	if err := m.hit("Update"); err != nil {
		return err
	}
	stored, ok := m.articles[a.ID]
	if !ok {
		return domain.ErrArticleNotFound
	}
	stored.Title, stored.Description, stored.Body = a.Title, a.Description, a.Body
	stored.TagList = append([]string{}, a.TagList...)
	return nil
}

func (m *memStore) Delete(ctx context.Context, articleID uint) error {
	if err := m.hit("Delete"); err != nil {
		return err
	}
	if _, ok := m.articles[articleID]; !ok {
		return domain.ErrArticleNotFound
	}
	delete(m.articles, articleID)
	return nil
}

func (m *memStore) AddComment(ctx context.Context, c *entity.Comment) error {
	if err := m.hit("AddComment"); err != nil {
		return err
	}
	if _, ok := m.users[c.OwnerID()]; !ok {
		return domain.ErrUserNotFound
	}
	a, ok := m.articles[c.ArticleID]
	if !ok {
		return domain.ErrArticleNotFound
	}
	now := m.tick()
	c.ID = m.nextCID
	c.CreatedAt, c.UpdatedAt = now, now
	c.Author = m.author(c.OwnerID())
	a.Comments = append(a.Comments, *c)
	a.UpdatedAt = now
	return nil
}

func (m *memStore) DeleteComment(ctx context.Context, articleID, commentID uint) error {
	if err := m.hit("DeleteComment"); err != nil {
		return err
	}
	a, ok := m.articles[articleID]
	if !ok {
		return domain.ErrArticleNotFound
	}
	if i, ok := a.CommentIndex(commentID); ok {
		a.RemoveComment(i)
	}
	return nil
}

func (m *memStore) Favorite(ctx context.Context, userID, articleID uint) (int, error) {
	if err := m.hit("Favorite"); err != nil {
		return 0, err
	}
	return m.setFavorite(userID, articleID, true)
}

func (m *memStore) Unfavorite(ctx context.Context, userID, articleID uint) (int, error) {
	if err := m.hit("Unfavorite"); err != nil {
		return 0, err
	}
	return m.setFavorite(userID, articleID, false)
}

func (m *memStore) setFavorite(userID, articleID uint, on bool) (int, error) {
	a, ok := m.articles[articleID]
	if !ok {
		return 0, domain.ErrArticleNotFound
	}
	if _, ok := m.users[userID]; !ok {
		return 0, domain.ErrUserNotFound
	}
	key := [2]uint{userID, articleID}
	if m.favorites[key] == on {
		return a.FavoriteCount, nil
	}
	if on {
		m.favorites[key] = true
	} else {
		delete(m.favorites, key)
	}
	n := 0
	for k := range m.favorites {
		if k[1] == articleID {
			n++
		}
	}
	a.FavoriteCount = n
	return n, nil
}

// edgeCount counts favorite edges for articleID straight from the edge set.
func (m *memStore) edgeCount(articleID uint) int {
	n := 0
	for k := range m.favorites {
		if k[1] == articleID {
			n++
		}
	}
	return n
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// memUsers resolves usernames against the users known to a memStore.
type memUsers struct {
	store *memStore
	err   error
}

func (u *memUsers) FindByUsername(ctx context.Context, username string) (*authentity.User, error) {
	if u.err != nil {
		return nil, u.err
	}
	for _, usr := range u.store.users {
		if usr.Username == username {
			return usr, nil
		}
	}
	return nil, authdomain.ErrUserNotFound
}

// memFollows is a fixed follow graph.
type memFollows struct {
	following map[uint][]uint
	calls     int
}

func (f *memFollows) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	f.calls++
	return append([]uint{}, f.following[userID]...), nil
}

// countingInvalidator records cache invalidations.
type countingInvalidator struct {
	n   int
	err error
}

func (c *countingInvalidator) Invalidate(ctx context.Context) error {
	c.n++
	return c.err
}

var errStoreDown = apperr.Store(context.DeadlineExceeded)
