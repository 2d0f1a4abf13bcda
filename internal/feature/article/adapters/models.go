// Package adapters はarticleフィーチャーのGORM実装を提供します。
// 記事・タグ・コメント・お気に入りのテーブルを扱い、複数行に跨る更新はすべて1トランザクションで行います。
package adapters

import (
	"time"

	"blog_backend/internal/feature/article/domain/entity"
)

// ArticleModel は articles テーブルの行です。TagList はJSONとして保存されます。
type ArticleModel struct {
	ID            uint           `gorm:"primaryKey"`
	Slug          string         `gorm:"size:255;uniqueIndex;not null"`
	Title         string         `gorm:"size:255;not null"`
	Description   string         `gorm:"type:text"`
	Body          string         `gorm:"type:text"`
	TagList       []string       `gorm:"type:text;serializer:json"`
	FavoriteCount int            `gorm:"not null;default:0"`
	AuthorID      uint           `gorm:"index;not null"`
	Author        *AuthorModel   `gorm:"foreignKey:AuthorID;-:migration"`
	Comments      []CommentModel `gorm:"foreignKey:ArticleID"`
	CreatedAt     time.Time      `gorm:"index"`
	UpdatedAt     time.Time
}

func (ArticleModel) TableName() string { return "articles" }

// AuthorModel は users テーブルの読み取り専用ビューです。
// テーブル自体はauthフィーチャーがマイグレーションします。
type AuthorModel struct {
	ID        uint `gorm:"primaryKey"`
	Username  string
	CreatedAt time.Time
}

func (AuthorModel) TableName() string { return "users" }

// CommentModel は comments テーブルの行です。作者が削除されると UserID は NULL になります。
type CommentModel struct {
	ID        uint         `gorm:"primaryKey"`
	Body      string       `gorm:"type:text;not null"`
	ArticleID uint         `gorm:"index;not null"`
	UserID    *uint        `gorm:"index"`
	User      *AuthorModel `gorm:"foreignKey:UserID;-:migration"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CommentModel) TableName() string { return "comments" }

// FavoriteModel は favorites テーブルの (user_id, article_id) エッジです。
type FavoriteModel struct {
	UserID    uint `gorm:"primaryKey;autoIncrement:false"`
	ArticleID uint `gorm:"primaryKey;autoIncrement:false;index"`
	CreatedAt time.Time
}

func (FavoriteModel) TableName() string { return "favorites" }

// ArticleTagModel は article_tags テーブルの行で、TagList を要素単位で検索するための索引です。
// 記事の作成・更新・削除と同じトランザクションで書き換えます。
type ArticleTagModel struct {
	ArticleID uint   `gorm:"primaryKey;autoIncrement:false"`
	Tag       string `gorm:"primaryKey;size:191"`
}

func (ArticleTagModel) TableName() string { return "article_tags" }

// Models はマイグレーション対象のモデル一覧です。
func Models() []any {
	return []any{&ArticleModel{}, &ArticleTagModel{}, &CommentModel{}, &FavoriteModel{}}
}

// tagRows は重複を除いた articleID のタグ行を返します。
func tagRows(articleID uint, tags []string) []ArticleTagModel {
	seen := make(map[string]struct{}, len(tags))
	rows := make([]ArticleTagModel, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		rows = append(rows, ArticleTagModel{ArticleID: articleID, Tag: t})
	}
	return rows
}

func toAuthor(m *AuthorModel) *entity.Author {
	if m == nil {
		return nil
	}
	return &entity.Author{ID: m.ID, Username: m.Username, CreatedAt: m.CreatedAt}
}

func toComment(m CommentModel) entity.Comment {
	return entity.Comment{
		ID:        m.ID,
		Body:      m.Body,
		ArticleID: m.ArticleID,
		AuthorID:  m.UserID,
		Author:    toAuthor(m.User),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toArticle(m ArticleModel) entity.Article {
	tags := m.TagList
	if tags == nil {
		tags = []string{}
	}
	comments := make([]entity.Comment, 0, len(m.Comments))
	for _, c := range m.Comments {
		comments = append(comments, toComment(c))
	}
	return entity.Article{
		ID:            m.ID,
		Slug:          m.Slug,
		Title:         m.Title,
		Description:   m.Description,
		Body:          m.Body,
		TagList:       tags,
		FavoriteCount: m.FavoriteCount,
		AuthorID:      m.AuthorID,
		Author:        toAuthor(m.Author),
		Comments:      comments,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromArticle(a *entity.Article) ArticleModel {
	return ArticleModel{
		ID:            a.ID,
		Slug:          a.Slug,
		Title:         a.Title,
		Description:   a.Description,
		Body:          a.Body,
		TagList:       a.TagList,
		FavoriteCount: a.FavoriteCount,
		AuthorID:      a.AuthorID,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
