package models

import (
	"time"
)

// DefaultAbout 用户未填写简介时由数据库填充的占位文本
const DefaultAbout = "This user has not said anything yet."

type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	About     string    `gorm:"type:text;not null;default:'This user has not said anything yet.'" json:"about"`
	Created   time.Time `gorm:"not null;autoCreateTime" json:"created"`
	Submitted IDList    `gorm:"not null" json:"submitted"` // 该用户发布的条目 ID，按发布顺序
}
