package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"olivier/internal/apperror"
	"olivier/internal/models"
)

func str(s string) *string { return &s }
func id(n int64) *int64    { return &n }

func assertValidation(t *testing.T, err error, msg string) {
	t.Helper()
	e, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.Error, got %v", err)
	assert.Equal(t, apperror.KindValidation, e.Kind)
	assert.Equal(t, "validation error: "+msg, e.Message)
}

func TestPostItemRequest_InvalidCategory(t *testing.T) {
	for _, token := range []string{"", "Story", "ASK", " story", "poll", "job"} {
		req := PostItemRequest{Category: token, By: 1, URL: str("http://x"), Title: str("T")}
		err := req.Validate()
		e, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.KindInvalidCategory, e.Kind, token)
	}
}

func TestPostItemRequest_Story(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := PostItemRequest{Category: "story", By: 1, URL: str("http://x"), Title: str("T")}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name string
		req  PostItemRequest
		msg  string
	}{
		{"missing url", PostItemRequest{Category: "story", Title: str("T")}, "story's url must exist and not empty"},
		{"empty url", PostItemRequest{Category: "story", URL: str(""), Title: str("T")}, "story's url must exist and not empty"},
		{"missing title", PostItemRequest{Category: "story", URL: str("http://x")}, "story's title must exist and not empty"},
		{"empty title", PostItemRequest{Category: "story", URL: str("http://x"), Title: str("")}, "story's title must exist and not empty"},
		{"with text", PostItemRequest{Category: "story", URL: str("http://x"), Title: str("T"), Text: str("t")}, "story could not have text"},
		{"with empty text", PostItemRequest{Category: "story", URL: str("http://x"), Title: str("T"), Text: str("")}, "story could not have text"},
		{"with parent", PostItemRequest{Category: "story", URL: str("http://x"), Title: str("T"), Parent: id(3)}, "story could not have parent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.msg)
		})
	}
}

func TestPostItemRequest_Ask(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := PostItemRequest{Category: "ask", By: 1, Text: str("why?"), Title: str("Ask HN")}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name string
		req  PostItemRequest
		msg  string
	}{
		{"nothing", PostItemRequest{Category: "ask", By: 1}, "ask's text must exist and not empty"},
		{"empty text", PostItemRequest{Category: "ask", Text: str(""), Title: str("T")}, "ask's text must exist and not empty"},
		{"missing title", PostItemRequest{Category: "ask", Text: str("t")}, "ask's title must exist and not empty"},
		{"empty title", PostItemRequest{Category: "ask", Text: str("t"), Title: str("")}, "ask's title must exist and not empty"},
		{"with parent", PostItemRequest{Category: "ask", Text: str("t"), Title: str("T"), Parent: id(1)}, "ask could not have parent"},
		{"with url", PostItemRequest{Category: "ask", Text: str("t"), Title: str("T"), URL: str("http://x")}, "ask could not have url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.msg)
		})
	}
}

func TestPostItemRequest_Comment(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := PostItemRequest{Category: "comment", By: 1, Text: str("nice"), Parent: id(7)}
		assert.NoError(t, req.Validate())
	})

	t.Run("parent zero still counts as present", func(t *testing.T) {
		req := PostItemRequest{Category: "comment", By: 1, Text: str("nice"), Parent: id(0)}
		assert.NoError(t, req.Validate())
	})

	tests := []struct {
		name string
		req  PostItemRequest
		msg  string
	}{
		{"missing text", PostItemRequest{Category: "comment", Parent: id(1)}, "comment's text must exist and not empty"},
		{"empty text", PostItemRequest{Category: "comment", Text: str(""), Parent: id(1)}, "comment's text must exist and not empty"},
		{"missing parent", PostItemRequest{Category: "comment", Text: str("t")}, "comment's parent must exist"},
		{"with url", PostItemRequest{Category: "comment", Text: str("t"), Parent: id(1), URL: str("u")}, "comment could not have url"},
		{"with title", PostItemRequest{Category: "comment", Text: str("t"), Parent: id(1), Title: str("T")}, "comment could not have title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertValidation(t, tt.req.Validate(), tt.msg)
		})
	}
}

func TestPostItemRequest_Item(t *testing.T) {
	story, err := (&PostItemRequest{Category: "story", By: 2, URL: str("http://x"), Title: str("T")}).Item()
	require.NoError(t, err)
	assert.Equal(t, models.Item{Category: models.CategoryStory, By: 2, URL: "http://x", Title: "T", Score: 1, Kids: models.IDList{}}, story)

	ask, err := (&PostItemRequest{Category: "ask", By: 2, Text: str("t"), Title: str("T")}).Item()
	require.NoError(t, err)
	assert.Equal(t, models.Item{Category: models.CategoryAsk, By: 2, Text: "t", Title: "T", Score: 1, Kids: models.IDList{}}, ask)

	comment, err := (&PostItemRequest{Category: "comment", By: 2, Text: str("t"), Parent: id(9)}).Item()
	require.NoError(t, err)
	assert.Equal(t, models.Item{Category: models.CategoryComment, By: 2, Text: "t", Parent: 9, Kids: models.IDList{}}, comment)

	_, err = (&PostItemRequest{Category: "poll"}).Item()
	assert.Error(t, err)
}

func TestPostUserRequest(t *testing.T) {
	empty := PostUserRequest{Name: "", About: str("anything")}
	assertValidation(t, empty.Validate(), "name could not be empty")

	assert.NoError(t, (&PostUserRequest{Name: "Oliver"}).Validate())
	assert.NoError(t, (&PostUserRequest{Name: "Oliver", About: str("")}).Validate())
	assert.NoError(t, (&PostUserRequest{Name: " "}).Validate())

	u := (&PostUserRequest{Name: "Oliver"}).User()
	assert.Equal(t, "Oliver", u.Name)
	assert.Empty(t, u.About)
	assert.NotNil(t, u.Submitted)

	u = (&PostUserRequest{Name: "Oliver", About: str("hi")}).User()
	assert.Equal(t, "hi", u.About)
}
