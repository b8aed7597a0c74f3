package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 图表与搜索接口按数字输出金额，而不是默认的带引号字符串
	decimal.MarshalJSONWithoutQuotes = true
}

// Income 收入记录模型
// 删除为物理删除（不可恢复），因此不带软删除字段
type Income struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	UserID      uint            `json:"user_id" gorm:"index;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        time.Time       `json:"date" gorm:"type:date;not null"` // 记账日期（日历日）
	Source      string          `json:"source" gorm:"size:100"`         // 自由文本，参考 Source 表建议值
	Description string          `json:"description" gorm:"size:255;not null"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	User        User            `json:"-" gorm:"foreignKey:UserID"`
}

func (Income) TableName() string {
	return "incomes"
}

// DateString 返回 YYYY-MM-DD 格式的记账日期
func (i Income) DateString() string {
	return i.Date.Format("2006-01-02")
}
