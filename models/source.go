package models

import (
	"time"

	"gorm.io/gorm"
)

// Source 收入来源参考表（后台维护），仅作为录入时的候选建议
// 收入记录上的 source 是自由文本，不做外键约束
type Source struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Sort      int            `json:"sort" gorm:"default:0;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Source) TableName() string {
	return "sources"
}
