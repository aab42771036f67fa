package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// IDList 有序 ID 列表（kids / submitted），PostgreSQL 下存为 bigint[]
type IDList []int64

func (l IDList) Value() (driver.Value, error) {
	return pq.Int64Array(l.orEmpty()).Value()
}

func (l *IDList) Scan(src any) error {
	var arr pq.Int64Array
	if err := arr.Scan(src); err != nil {
		return err
	}
	*l = IDList(arr).orEmpty()
	return nil
}

// MarshalJSON never emits null; an empty list is [].
func (l IDList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]int64(l.orEmpty()))
}

func (IDList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "bigint[]"
	}
	return "text"
}

// Append returns a copy of l with id added at the end.
func (l IDList) Append(id int64) IDList {
	out := make(IDList, 0, len(l)+1)
	out = append(out, l...)
	return append(out, id)
}

func (l IDList) orEmpty() IDList {
	if l == nil {
		return IDList{}
	}
	return l
}
