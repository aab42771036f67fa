package dto

import (
	"olivier/internal/apperror"
	"olivier/internal/models"
)

// PostUserRequest 创建 / 更新用户的请求体
type PostUserRequest struct {
	Name  string  `json:"name"`
	About *string `json:"about"`
}

// Validate checks the name; about is unconstrained.
func (r *PostUserRequest) Validate() error {
	if len(r.Name) == 0 {
		return apperror.Validation("name could not be empty")
	}
	return nil
}

// User builds the row to insert. A missing about is left empty so the
// store default applies.
func (r *PostUserRequest) User() models.User {
	u := models.User{
		Name:      r.Name,
		Submitted: models.IDList{},
	}
	if r.About != nil {
		u.About = *r.About
	}
	return u
}

// PostItemRequest 创建条目的请求体，category 为原始字符串
type PostItemRequest struct {
	Category string  `json:"category"`
	By       int64   `json:"by"`
	Text     *string `json:"text"`
	Parent   *int64  `json:"parent"`
	URL      *string `json:"url"`
	Title    *string `json:"title"`
}

// Validate resolves the category and applies its field rules:
//
//	story:   url, title required; text, parent forbidden
//	ask:     text, title required; parent, url forbidden
//	comment: text, parent required; url, title forbidden
//
// Required strings must also be non-empty. Whether the parent item exists
// is not checked here.
func (r *PostItemRequest) Validate() error {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return apperror.InvalidCategory(err)
	}

	switch category {
	case models.CategoryStory:
		if r.Text != nil {
			return forbidden(category, "text")
		}
		if r.Parent != nil {
			return forbidden(category, "parent")
		}
		if !nonEmpty(r.URL) {
			return required(category, "url")
		}
		if !nonEmpty(r.Title) {
			return required(category, "title")
		}
	case models.CategoryAsk:
		if !nonEmpty(r.Text) {
			return required(category, "text")
		}
		if r.Parent != nil {
			return forbidden(category, "parent")
		}
		if r.URL != nil {
			return forbidden(category, "url")
		}
		if !nonEmpty(r.Title) {
			return required(category, "title")
		}
	case models.CategoryComment:
		if !nonEmpty(r.Text) {
			return required(category, "text")
		}
		if r.Parent == nil {
			return apperror.Validation("comment's parent must exist")
		}
		if r.URL != nil {
			return forbidden(category, "url")
		}
		if r.Title != nil {
			return forbidden(category, "title")
		}
	}
	return nil
}

// Item builds the row to insert for a validated request. Fields the category
// does not use get zero values since every column is non-null.
func (r *PostItemRequest) Item() (models.Item, error) {
	category, err := models.ParseCategory(r.Category)
	if err != nil {
		return models.Item{}, apperror.InvalidCategory(err)
	}

	item := models.Item{
		Category: category,
		By:       r.By,
		Kids:     models.IDList{},
	}
	switch category {
	case models.CategoryStory:
		item.URL = *r.URL
		item.Title = *r.Title
		item.Score = 1
	case models.CategoryAsk:
		item.Text = *r.Text
		item.Title = *r.Title
		item.Score = 1
	case models.CategoryComment:
		item.Text = *r.Text
		item.Parent = *r.Parent
	}
	return item, nil
}

func nonEmpty(s *string) bool {
	return s != nil && len(*s) > 0
}

func required(c models.Category, field string) error {
	return apperror.Validation(string(c) + "'s " + field + " must exist and not empty")
}

func forbidden(c models.Category, field string) error {
	return apperror.Validation(string(c) + " could not have " + field)
}
