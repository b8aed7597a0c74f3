package models

import (
	"strings"
	"time"
)

// UserPreference 用户偏好，目前只有展示币种
// 本模块只读使用，注册时写入默认值
type UserPreference struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	Currency  string    `json:"currency" gorm:"size:50;not null"` // 格式如 "CNY - ¥"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}

// Symbol 取币种符号部分，如 "CNY - ¥" 返回 "¥"
func (p UserPreference) Symbol() string {
	if i := strings.LastIndex(p.Currency, "- "); i >= 0 {
		return p.Currency[i+2:]
	}
	return p.Currency
}
