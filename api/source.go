package api

import (
	"strconv"
	"strings"

	"incomebook/database"
	"incomebook/models"

	"github.com/gin-gonic/gin"
)

// SourceHandler 收入来源参考表管理
type SourceHandler struct{}

func NewSourceHandler() *SourceHandler {
	return &SourceHandler{}
}

type SourceCreateRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
	Sort int    `json:"sort"`
}

type SourceUpdateRequest struct {
	Name string `json:"name" binding:"omitempty,min=1,max=50"`
	Sort *int   `json:"sort"`
}

// List 列出所有来源（录入表单的建议值）
// @Summary 获取收入来源列表
// @Tags 来源
// @Produce json
// @Success 200 {object} Response{data=[]models.Source} "获取成功"
// @Router /income/sources [get]
func (h *SourceHandler) List(c *gin.Context) {
	var list []models.Source
	if err := database.DB.Order("sort ASC, id ASC").Find(&list).Error; err != nil {
		InternalError(c, "查询失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}
	Success(c, list)
}

// Create 创建来源（管理员）
// @Summary 创建收入来源
// @Tags 后台管理-收入来源
// @Accept json
// @Produce json
// @Param request body SourceCreateRequest true "来源信息"
// @Success 200 {object} Response{data=models.Source} "创建成功"
// @Failure 400 {object} Response "参数错误或名称已存在"
// @Router /admin/sources [post]
func (h *SourceHandler) Create(c *gin.Context) {
	var req SourceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		BadRequest(c, "名称不能为空")
		return
	}

	// 唯一性
	var existing models.Source
	if err := database.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		BadRequest(c, "来源名称已存在")
		return
	}

	source := models.Source{Name: req.Name, Sort: req.Sort}
	if err := database.DB.Create(&source).Error; err != nil {
		InternalError(c, "创建失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}
	SuccessWithMessage(c, "创建成功", source)
}

// Update 更新来源（管理员）
// @Summary 更新收入来源
// @Tags 后台管理-收入来源
// @Accept json
// @Produce json
// @Param id path int true "来源ID"
// @Param request body SourceUpdateRequest true "来源信息"
// @Success 200 {object} Response{data=models.Source} "更新成功"
// @Failure 404 {object} Response "来源不存在"
// @Router /admin/sources/{id} [put]
func (h *SourceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var source models.Source
	if err := database.DB.First(&source, uint(id)).Error; err != nil {
		NotFound(c, "来源不存在")
		return
	}

	var req SourceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "参数错误: "+err.Error())
		return
	}

	updates := map[string]interface{}{}
	if name := strings.TrimSpace(req.Name); name != "" {
		updates["name"] = name
	}
	if req.Sort != nil {
		updates["sort"] = *req.Sort
	}
	if len(updates) == 0 {
		Success(c, source)
		return
	}

	if err := database.DB.Model(&source).Updates(updates).Error; err != nil {
		InternalError(c, "更新失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}
	database.DB.First(&source, source.ID)
	SuccessWithMessage(c, "更新成功", source)
}

// Delete 删除来源（管理员，软删除）
// 不影响已有收入记录上的 source 文本
// @Summary 删除收入来源
// @Tags 后台管理-收入来源
// @Produce json
// @Param id path int true "来源ID"
// @Success 200 {object} Response "删除成功"
// @Failure 404 {object} Response "来源不存在"
// @Router /admin/sources/{id} [delete]
func (h *SourceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "无效的ID")
		return
	}
	var source models.Source
	if err := database.DB.First(&source, uint(id)).Error; err != nil {
		NotFound(c, "来源不存在")
		return
	}
	if err := database.DB.Delete(&source).Error; err != nil {
		InternalError(c, "删除失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}
	SuccessWithMessage(c, "删除成功", nil)
}
