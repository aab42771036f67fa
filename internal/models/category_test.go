package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	for _, token := range []string{"ask", "comment", "story"} {
		c, err := ParseCategory(token)
		require.NoError(t, err)
		assert.Equal(t, token, c.String())

		data, err := json.Marshal(c)
		require.NoError(t, err)
		assert.Equal(t, `"`+token+`"`, string(data))
	}
}

func TestParseCategory_Invalid(t *testing.T) {
	for _, token := range []string{"", "Ask", "STORY", "story ", " comment", "poll", "job"} {
		_, err := ParseCategory(token)
		var invalid *InvalidCategoryError
		require.ErrorAs(t, err, &invalid, token)
		assert.Equal(t, token, invalid.Token)
	}
}

func TestCategory_JSON(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`"comment"`), &c))
	assert.Equal(t, CategoryComment, c)

	err := json.Unmarshal([]byte(`"Comment"`), &c)
	var invalid *InvalidCategoryError
	assert.ErrorAs(t, err, &invalid)

	_, err = json.Marshal(Category("poll"))
	assert.Error(t, err)
}

func TestCategory_SQL(t *testing.T) {
	v, err := CategoryStory.Value()
	require.NoError(t, err)
	assert.Equal(t, "story", v)

	var c Category
	require.NoError(t, c.Scan([]byte("ask")))
	assert.Equal(t, CategoryAsk, c)
	require.NoError(t, c.Scan("comment"))
	assert.Equal(t, CategoryComment, c)

	assert.Error(t, c.Scan(42))
	assert.Error(t, c.Scan("poll"))

	_, err = Category("").Value()
	assert.Error(t, err)
}

func TestIDList(t *testing.T) {
	var l IDList
	data, err := json.Marshal(l)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	v, err := IDList{1, 2, 3}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{1,2,3}", v)

	require.NoError(t, l.Scan([]byte("{4,5}")))
	assert.Equal(t, IDList{4, 5}, l)

	require.NoError(t, l.Scan("{}"))
	assert.Equal(t, IDList{}, l)

	base := IDList{1}
	appended := base.Append(2)
	assert.Equal(t, IDList{1, 2}, appended)
	assert.Equal(t, IDList{1}, base)
}
