package service

import (
	"time"

	"incomebook/models"

	"github.com/shopspring/decimal"
)

// WeekdayNames 周聚合桶的固定键，顺序与图表一致
var WeekdayNames = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MonthNames 年聚合桶的固定键
var MonthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ReportWindows 统计用的三个时间窗口，闭区间，均相对 today 计算
type ReportWindows struct {
	Today        time.Time
	SixMonthsAgo time.Time // today - 180 天
	StartOfWeek  time.Time // 最近的周一（含当天）
	StartOfYear  time.Time // 当年 1 月 1 日
}

// WindowsFor 按服务器本地日历日计算统计窗口
func WindowsFor(today time.Time) ReportWindows {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	// Weekday 周日为 0，换算成周一起点的偏移
	offset := (int(day.Weekday()) + 6) % 7
	return ReportWindows{
		Today:        day,
		SixMonthsAgo: day.AddDate(0, 0, -180),
		StartOfWeek:  day.AddDate(0, 0, -offset),
		StartOfYear:  time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location()),
	}
}

// CategoryTotals 按来源分组求和（区分大小写的精确匹配）
// 窗口内没有记录的来源不出现在结果里
func CategoryTotals(records []models.Income) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, rec := range records {
		totals[rec.Source] = totals[rec.Source].Add(rec.Amount)
	}
	return totals
}

// WeeklyTotals 按星期几分桶求和，七个桶全部预置为 0
func WeeklyTotals(records []models.Income) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(WeekdayNames))
	for _, day := range WeekdayNames {
		totals[day] = decimal.Zero
	}
	for _, rec := range records {
		day := rec.Date.Weekday().String()
		totals[day] = totals[day].Add(rec.Amount)
	}
	return totals
}

// YearlyTotals 按月份分桶求和，十二个桶全部预置为 0
func YearlyTotals(records []models.Income) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(MonthNames))
	for _, month := range MonthNames {
		totals[month] = decimal.Zero
	}
	for _, rec := range records {
		month := rec.Date.Month().String()
		totals[month] = totals[month].Add(rec.Amount)
	}
	return totals
}
