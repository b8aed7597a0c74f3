package api

import (
	"net/http"
	"strings"

	"incomebook/database"
	"incomebook/middleware"
	"incomebook/models"

	"github.com/gin-gonic/gin"
)

// SearchRequest 搜索请求体
type SearchRequest struct {
	SearchText string `json:"searchText"`
}

// escapeLikeValue 转义 LIKE 查询中的通配符 % 和 _，防止用户输入改变匹配语义
func escapeLikeValue(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// Search 搜索当前用户的收入记录
// 命中条件：金额前缀、日期前缀、描述包含、来源包含（后两者不区分大小写）
// 单条 SQL 的 OR 组合保证每条记录至多出现一次
// @Summary 搜索收入记录
// @Description 按关键字搜索当前用户的收入记录，返回原始字段数组
// @Tags 收入
// @Accept json
// @Produce json
// @Param request body SearchRequest true "搜索关键字"
// @Success 200 {array} map[string]interface{} "记录数组"
// @Failure 400 {object} Response "请求参数错误"
// @Router /income/search [post]
func (h *IncomeHandler) Search(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	like := escapeLikeValue(req.SearchText)

	var records []models.Income
	if err := database.DB.Where("user_id = ?", userID).
		Where("CAST(amount AS CHAR) LIKE ? OR DATE_FORMAT(date, '%Y-%m-%d') LIKE ? OR LOWER(description) LIKE ? OR LOWER(source) LIKE ?",
			like+"%",
			like+"%",
			"%"+strings.ToLower(like)+"%",
			"%"+strings.ToLower(like)+"%",
		).
		Find(&records).Error; err != nil {
		InternalError(c, "搜索失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}

	// 输出原始字段映射，日期统一为 YYYY-MM-DD
	results := make([]gin.H, 0, len(records))
	for _, rec := range records {
		results = append(results, gin.H{
			"id":          rec.ID,
			"user_id":     rec.UserID,
			"amount":      rec.Amount,
			"date":        rec.DateString(),
			"source":      rec.Source,
			"description": rec.Description,
		})
	}
	c.JSON(http.StatusOK, results)
}
