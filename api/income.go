package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"incomebook/database"
	"incomebook/middleware"
	"incomebook/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// listPageSize 列表页每页条数
const listPageSize = 5

// IncomeHandler 收入记录处理器（页面流程）
type IncomeHandler struct{}

func NewIncomeHandler() *IncomeHandler {
	return &IncomeHandler{}
}

// IncomeForm 新增/编辑表单
// amount 和 description 为必填，在请求层校验
type IncomeForm struct {
	Amount      string `form:"amount"`
	Description string `form:"description"`
	IncomeDate  string `form:"income_date"`
	Source      string `form:"source"`
}

// parse 校验表单并解析金额与日期
// 返回的 message 非空时表示校验失败，应回显表单
func (f *IncomeForm) parse() (amount decimal.Decimal, date time.Time, message string) {
	if strings.TrimSpace(f.Amount) == "" {
		return amount, date, "金额不能为空"
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(f.Amount))
	if err != nil {
		return amount, date, "金额格式不正确"
	}
	if strings.TrimSpace(f.Description) == "" {
		return amount, date, "描述不能为空"
	}
	if f.IncomeDate == "" {
		// 未选日期按当天记账
		now := time.Now()
		date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
		return amount, date, ""
	}
	date, err = time.ParseInLocation("2006-01-02", f.IncomeDate, time.Local)
	if err != nil {
		return amount, date, "日期格式不正确，应为 2006-01-02"
	}
	return amount, date, ""
}

// loadCurrency 读取用户币种偏好，缺失时回退到配置默认值
func loadCurrency(userID uint) models.UserPreference {
	var pref models.UserPreference
	if err := database.DB.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		pref = models.UserPreference{UserID: userID}
		if cfg := configDefaultCurrency(); cfg != "" {
			pref.Currency = cfg
		}
	}
	return pref
}

// loadSources 读取来源参考表，供表单下拉建议
func loadSources() []models.Source {
	var sources []models.Source
	database.DB.Order("sort ASC, id ASC").Find(&sources)
	return sources
}

// Index 收入列表页
// @Summary 收入列表页
// @Description 当前用户的收入记录，按日期倒序分页展示，每页 5 条
// @Tags 收入
// @Produce html
// @Param page query int false "页码（1 起）" default(1)
// @Success 200 {string} string "HTML 页面"
// @Router /income/ [get]
func (h *IncomeHandler) Index(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	var total int64
	database.DB.Model(&models.Income{}).Where("user_id = ?", userID).Count(&total)

	totalPages := int((total + listPageSize - 1) / listPageSize)
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	var records []models.Income
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Offset((page - 1) * listPageSize).
		Limit(listPageSize).
		Find(&records).Error; err != nil {
		renderErrorPage(c, http.StatusInternalServerError, SafeErrorMessage(err, "查询失败"))
		return
	}

	pref := loadCurrency(userID)
	kind, message := takeFlash(c)

	c.HTML(http.StatusOK, "income_index.html", gin.H{
		"Username":   middleware.GetCurrentUsername(c),
		"Records":    records,
		"Currency":   pref.Symbol(),
		"Total":      total,
		"Page":       page,
		"TotalPages": totalPages,
		"HasPrev":    page > 1,
		"HasNext":    page < totalPages,
		"PrevPage":   page - 1,
		"NextPage":   page + 1,
		"FlashKind":  kind,
		"Flash":      message,
	})
}

// ShowAdd 渲染新增表单
// @Summary 新增收入页
// @Tags 收入
// @Produce html
// @Success 200 {string} string "HTML 页面"
// @Router /income/add [get]
func (h *IncomeHandler) ShowAdd(c *gin.Context) {
	c.HTML(http.StatusOK, "income_add.html", gin.H{
		"Username": middleware.GetCurrentUsername(c),
		"Sources":  loadSources(),
		"Values":   IncomeForm{},
	})
}

// Add 处理新增表单
// 校验失败回显表单与错误信息，成功后重定向到列表页
// @Summary 新增收入
// @Tags 收入
// @Accept x-www-form-urlencoded
// @Produce html
// @Param amount formData string true "金额"
// @Param description formData string true "描述"
// @Param income_date formData string false "记账日期 (2006-01-02)"
// @Param source formData string false "来源"
// @Success 302 {string} string "重定向到列表页"
// @Router /income/add [post]
func (h *IncomeHandler) Add(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var form IncomeForm
	_ = c.ShouldBind(&form)

	amount, date, message := form.parse()
	if message != "" {
		c.HTML(http.StatusOK, "income_add.html", gin.H{
			"Username":  middleware.GetCurrentUsername(c),
			"Sources":   loadSources(),
			"Values":    form,
			"FlashKind": "error",
			"Flash":     message,
		})
		return
	}

	record := models.Income{
		UserID:      userID,
		Amount:      amount,
		Date:        date,
		Source:      form.Source,
		Description: strings.TrimSpace(form.Description),
	}
	if err := database.DB.Create(&record).Error; err != nil {
		c.HTML(http.StatusOK, "income_add.html", gin.H{
			"Username":  middleware.GetCurrentUsername(c),
			"Sources":   loadSources(),
			"Values":    form,
			"FlashKind": "error",
			"Flash":     "保存失败: " + SafeErrorMessage(err, "请稍后重试"),
		})
		return
	}

	setFlash(c, "success", "记录保存成功")
	c.Redirect(http.StatusFound, "/income/")
}

// ShowEdit 渲染编辑表单
// @Summary 编辑收入页
// @Tags 收入
// @Produce html
// @Param id path int true "记录ID"
// @Success 200 {string} string "HTML 页面"
// @Failure 404 {string} string "记录不存在"
// @Router /income/edit/{id} [get]
func (h *IncomeHandler) ShowEdit(c *gin.Context) {
	record, ok := h.fetchOwnedRecord(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "income_edit.html", gin.H{
		"Username": middleware.GetCurrentUsername(c),
		"Sources":  loadSources(),
		"Record":   record,
		"Values": IncomeForm{
			Amount:      record.Amount.StringFixed(2),
			Description: record.Description,
			IncomeDate:  record.DateString(),
			Source:      record.Source,
		},
	})
}

// Edit 处理编辑表单
// 除 id 与 owner 外所有字段可替换；成功后重定向到列表页
// @Summary 编辑收入
// @Tags 收入
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path int true "记录ID"
// @Param amount formData string true "金额"
// @Param description formData string true "描述"
// @Param income_date formData string false "记账日期 (2006-01-02)"
// @Param source formData string false "来源"
// @Success 302 {string} string "重定向到列表页"
// @Failure 404 {string} string "记录不存在"
// @Router /income/edit/{id} [post]
func (h *IncomeHandler) Edit(c *gin.Context) {
	record, ok := h.fetchOwnedRecord(c)
	if !ok {
		return
	}

	var form IncomeForm
	_ = c.ShouldBind(&form)

	amount, date, message := form.parse()
	if message != "" {
		c.HTML(http.StatusOK, "income_edit.html", gin.H{
			"Username":  middleware.GetCurrentUsername(c),
			"Sources":   loadSources(),
			"Record":    record,
			"Values":    form,
			"FlashKind": "error",
			"Flash":     message,
		})
		return
	}

	record.Amount = amount
	record.Date = date
	record.Source = form.Source
	record.Description = strings.TrimSpace(form.Description)

	if err := database.DB.Save(&record).Error; err != nil {
		c.HTML(http.StatusOK, "income_edit.html", gin.H{
			"Username":  middleware.GetCurrentUsername(c),
			"Sources":   loadSources(),
			"Record":    record,
			"Values":    form,
			"FlashKind": "error",
			"Flash":     "保存失败: " + SafeErrorMessage(err, "请稍后重试"),
		})
		return
	}

	setFlash(c, "success", "记录更新成功")
	c.Redirect(http.StatusFound, "/income/")
}

// Delete 删除收入记录（物理删除）
// 只能删除自己的记录，他人记录返回 403
// @Summary 删除收入
// @Tags 收入
// @Produce html
// @Param id path int true "记录ID"
// @Success 302 {string} string "重定向到列表页"
// @Failure 403 {string} string "无权操作"
// @Failure 404 {string} string "记录不存在"
// @Router /income/delete/{id} [get]
func (h *IncomeHandler) Delete(c *gin.Context) {
	record, ok := h.fetchOwnedRecord(c)
	if !ok {
		return
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		renderErrorPage(c, http.StatusInternalServerError, SafeErrorMessage(err, "删除失败"))
		return
	}

	setFlash(c, "success", "记录已删除")
	c.Redirect(http.StatusFound, "/income/")
}

// fetchOwnedRecord 按路径 id 加载记录并校验归属
// 不存在返回 404，非本人记录返回 403
func (h *IncomeHandler) fetchOwnedRecord(c *gin.Context) (models.Income, bool) {
	userID := middleware.GetCurrentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		renderErrorPage(c, http.StatusNotFound, "无效的记录ID")
		return models.Income{}, false
	}

	var record models.Income
	if err := database.DB.First(&record, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			renderErrorPage(c, http.StatusNotFound, "记录不存在")
		} else {
			renderErrorPage(c, http.StatusInternalServerError, SafeErrorMessage(err, "查询失败"))
		}
		return models.Income{}, false
	}
	if record.UserID != userID {
		renderErrorPage(c, http.StatusForbidden, "无权操作他人的记录")
		return models.Income{}, false
	}
	return record, true
}

// ShowStats 统计图表页，图表数据由前端请求 category-summary 接口
// @Summary 收入统计页
// @Tags 统计
// @Produce html
// @Success 200 {string} string "HTML 页面"
// @Router /income/stats [get]
func (h *IncomeHandler) ShowStats(c *gin.Context) {
	c.HTML(http.StatusOK, "income_stats.html", gin.H{
		"Username": middleware.GetCurrentUsername(c),
	})
}

// renderErrorPage 渲染统一错误页
func renderErrorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": message,
	})
}

// configDefaultCurrency 配置中的默认币种，配置未加载时为空
func configDefaultCurrency() string {
	if cfg := currentConfig(); cfg != nil {
		return cfg.App.Currency
	}
	return ""
}
