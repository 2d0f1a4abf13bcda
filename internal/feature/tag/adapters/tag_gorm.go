// Package adapters はタグ一覧のGORM実装を提供します。
package adapters

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"blog_backend/internal/feature/tag/usecase"
	"blog_backend/internal/shared/apperr"
)

// tagRow は articles.tag_list 列だけを読み出すための行です。
type tagRow struct {
	TagList []string `gorm:"serializer:json"`
}

type tagGorm struct {
	db *gorm.DB
}

var _ usecase.TagRepository = (*tagGorm)(nil)

// NewTagGorm はタグリポジトリを生成します。
func NewTagGorm(db *gorm.DB) *tagGorm {
	return &tagGorm{db: db}
}

// ListTags は全記事のタグ列を読み出し、重複を除いて昇順で返します。
func (r *tagGorm) ListTags(ctx context.Context) ([]string, error) {
	var rows []tagRow
	err := r.db.WithContext(ctx).
		Table("articles").
		Distinct("tag_list").
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Store(err)
	}

	seen := map[string]struct{}{}
	tags := []string{}
	for _, row := range rows {
		for _, tag := range row.TagList {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	return tags, nil
}
