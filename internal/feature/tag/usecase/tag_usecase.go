// Package usecase はタグ一覧のユースケースを提供します。
package usecase

import "context"

// TagRepository は記事に付いたタグの集合を返します。
type TagRepository interface {
	// ListTags returns every distinct tag in ascending order.
	ListTags(ctx context.Context) ([]string, error)
}

type tagUsecase struct {
	repo TagRepository
}

// NewTagUsecase はtagUsecaseを生成します。
func NewTagUsecase(repo TagRepository) *tagUsecase {
	return &tagUsecase{repo: repo}
}

// ListTags は全記事のタグを重複なしで返します。結果がnilになることはありません。
func (u *tagUsecase) ListTags(ctx context.Context) ([]string, error) {
	tags, err := u.repo.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}
