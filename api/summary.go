package api

import (
	"net/http"
	"time"

	"incomebook/database"
	"incomebook/middleware"
	"incomebook/models"
	"incomebook/service"

	"github.com/gin-gonic/gin"
)

// CategorySummary 图表数据接口
// 三个窗口均为闭区间：近 180 天、本周（最近的周一起）、今年（1 月 1 日起）
// 周/月分桶固定 7/12 个键，无记录的来源不出现在 income_category_data 中
// @Summary 收入汇总数据
// @Description 返回来源汇总（近 6 个月）、按星期汇总（本周）、按月份汇总（今年）三组图表数据
// @Tags 统计
// @Produce json
// @Success 200 {object} map[string]interface{} "income_category_data / weekly_income_data / yearly_income_data"
// @Router /income/category-summary [get]
func (h *IncomeHandler) CategorySummary(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	windows := service.WindowsFor(time.Now())

	queryWindow := func(from, to time.Time) []models.Income {
		var records []models.Income
		database.DB.Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).Find(&records)
		return records
	}

	sixMonth := queryWindow(windows.SixMonthsAgo, windows.Today)
	weekly := queryWindow(windows.StartOfWeek, windows.Today)
	yearly := queryWindow(windows.StartOfYear, windows.Today)

	// 返回结构与前端图表约定固定，不走统一 Response 包装
	c.JSON(http.StatusOK, gin.H{
		"income_category_data": service.CategoryTotals(sixMonth),
		"weekly_income_data":   service.WeeklyTotals(weekly),
		"yearly_income_data":   service.YearlyTotals(yearly),
	})
}
