package entity

import "slices"

// Draft holds the author-supplied fields of a new article.
type Draft struct {
	Title       string
	Description string
	Body        string
	TagList     []string
}

// NewArticle builds an unsaved article for authorID under slug.
// A nil tag list becomes empty and the comment collection starts empty.
func NewArticle(authorID uint, d Draft, slug string) *Article {
	tags := d.TagList
	if tags == nil {
		tags = []string{}
	}
	return &Article{
		Slug:        slug,
		Title:       d.Title,
		Description: d.Description,
		Body:        d.Body,
		TagList:     tags,
		AuthorID:    authorID,
		Comments:    []Comment{},
	}
}

// Patch is a partial update. Nil fields keep their current value.
// It has no id, author or slug field, so those cannot be changed through it.
type Patch struct {
	Title       *string
	Description *string
	Body        *string
	TagList     *[]string
}

// Apply merges p into a and reports whether the tag list changed.
func (p Patch) Apply(a *Article) (tagsChanged bool) {
	if p.Title != nil {
		a.Title = *p.Title
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.Body != nil {
		a.Body = *p.Body
	}
	if p.TagList != nil {
		tags := *p.TagList
		if tags == nil {
			tags = []string{}
		}
		tagsChanged = !slices.Equal(a.TagList, tags)
		a.TagList = tags
	}
	return tagsChanged
}
