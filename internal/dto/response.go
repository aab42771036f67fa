package dto

import (
	"fmt"
	"time"

	"olivier/internal/models"
)

// ItemResponse is one of StoryResponse, AskResponse or CommentResponse.
type ItemResponse interface {
	itemResponse()
}

type StoryResponse struct {
	ID          int64           `json:"id"`
	Category    models.Category `json:"category"`
	By          int64           `json:"by"`
	Time        time.Time       `json:"time"`
	Kids        models.IDList   `json:"kids"`
	URL         string          `json:"url"`
	Score       int             `json:"score"`
	Title       string          `json:"title"`
	Descendants int             `json:"descendants"`
}

type AskResponse struct {
	ID          int64           `json:"id"`
	Category    models.Category `json:"category"`
	By          int64           `json:"by"`
	Time        time.Time       `json:"time"`
	Text        string          `json:"text"`
	TextHTML    string          `json:"text_html,omitempty"`
	Kids        models.IDList   `json:"kids"`
	Score       int             `json:"score"`
	Title       string          `json:"title"`
	Descendants int             `json:"descendants"`
}

type CommentResponse struct {
	ID       int64           `json:"id"`
	Category models.Category `json:"category"`
	By       int64           `json:"by"`
	Time     time.Time       `json:"time"`
	Parent   int64           `json:"parent"`
	Kids     models.IDList   `json:"kids"`
	Text     string          `json:"text"`
	TextHTML string          `json:"text_html,omitempty"`
}

func (StoryResponse) itemResponse()   {}
func (AskResponse) itemResponse()     {}
func (CommentResponse) itemResponse() {}

// NewItemResponse 按类型投影为对应的响应结构
func NewItemResponse(item models.Item) ItemResponse {
	switch item.Category {
	case models.CategoryStory:
		return StoryResponse{
			ID:          item.ID,
			Category:    item.Category,
			By:          item.By,
			Time:        item.Time,
			Kids:        item.Kids,
			URL:         item.URL,
			Score:       item.Score,
			Title:       item.Title,
			Descendants: item.Descendants,
		}
	case models.CategoryAsk:
		return AskResponse{
			ID:          item.ID,
			Category:    item.Category,
			By:          item.By,
			Time:        item.Time,
			Text:        item.Text,
			Kids:        item.Kids,
			Score:       item.Score,
			Title:       item.Title,
			Descendants: item.Descendants,
		}
	case models.CategoryComment:
		return CommentResponse{
			ID:       item.ID,
			Category: item.Category,
			By:       item.By,
			Time:     item.Time,
			Parent:   item.Parent,
			Kids:     item.Kids,
			Text:     item.Text,
		}
	}
	// category column is an enum, anything else is a bug
	panic(fmt.Sprintf("dto: item %d has unknown category %q", item.ID, item.Category))
}

// WithTextHTML fills text_html of ask and comment responses with the
// rendered text. text itself is left as stored.
func WithTextHTML(r ItemResponse, render func(string) string) ItemResponse {
	switch v := r.(type) {
	case AskResponse:
		v.TextHTML = render(v.Text)
		return v
	case CommentResponse:
		v.TextHTML = render(v.Text)
		return v
	}
	return r
}

type UserResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Created   time.Time     `json:"created"`
	About     string        `json:"about"`
	Submitted models.IDList `json:"submitted"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Created:   u.Created,
		About:     u.About,
		Submitted: u.Submitted,
	}
}

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ServiceStatusResponse reports the health of dependencies.
type ServiceStatusResponse struct {
	Database bool `json:"database"`
}
