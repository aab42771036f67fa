package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Category 条目类型，Item 的判别标签
type Category string

const (
	CategoryAsk     Category = "ask"
	CategoryComment Category = "comment"
	CategoryStory   Category = "story"
)

// Categories lists every category in enum declaration order.
var Categories = []Category{CategoryAsk, CategoryComment, CategoryStory}

// InvalidCategoryError is returned when a token does not name a category.
type InvalidCategoryError struct {
	Token string
}

func (e *InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid category %q", e.Token)
}

// ParseCategory 解析类型标记，必须完全匹配（不转换大小写，不去空格）
func ParseCategory(token string) (Category, error) {
	switch token {
	case "ask":
		return CategoryAsk, nil
	case "comment":
		return CategoryComment, nil
	case "story":
		return CategoryStory, nil
	}
	return "", &InvalidCategoryError{Token: token}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) MarshalJSON() ([]byte, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	return json.Marshal(string(c))
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return err
	}
	parsed, err := ParseCategory(token)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Value implements driver.Valuer.
func (c Category) Value() (driver.Value, error) {
	if _, err := ParseCategory(string(c)); err != nil {
		return nil, err
	}
	return string(c), nil
}

// Scan implements sql.Scanner.
func (c *Category) Scan(src any) error {
	var token string
	switch v := src.(type) {
	case string:
		token = v
	case []byte:
		token = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}
	parsed, err := ParseCategory(token)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// GormDBDataType uses the native enum on PostgreSQL (created by db.Migrate).
func (Category) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "category"
	}
	return "varchar(16)"
}
