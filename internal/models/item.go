package models

import (
	"time"
)

// Item 单表多态条目：story / ask / comment，由 Category 区分
type Item struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Deleted     bool      `gorm:"not null;default:false" json:"deleted"`
	Category    Category  `gorm:"not null;index" json:"category"`
	By          int64     `gorm:"not null;index" json:"by"`
	Author      *User     `gorm:"foreignKey:By;constraint:OnUpdate:NO ACTION,OnDelete:NO ACTION;" json:"-"`
	Time        time.Time `gorm:"not null;autoCreateTime" json:"time"`
	Text        string    `gorm:"type:text;not null;default:''" json:"text"`
	Dead        bool      `gorm:"not null;default:false" json:"dead"`
	Parent      int64     `gorm:"not null;default:0;index" json:"parent"`
	Kids        IDList    `gorm:"not null" json:"kids"`
	URL         string    `gorm:"not null;default:''" json:"url"`
	Score       int       `gorm:"not null;default:0" json:"score"`
	Title       string    `gorm:"not null;default:''" json:"title"`
	Descendants int       `gorm:"not null;default:0" json:"descendants"`
}
