package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"incomebook/config"
	"incomebook/database"
	"incomebook/middleware"
	"incomebook/models"
	"incomebook/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct {
	emailService *service.EmailService
}

// NewExportHandler 创建导出处理器
func NewExportHandler(cfg *config.Config) *ExportHandler {
	return &ExportHandler{
		emailService: service.NewEmailService(&cfg.Email),
	}
}

// buildIncomeCSV 生成收入记录 CSV，列序固定 Amount,Source,Description,Date
func buildIncomeCSV(records []models.Income) ([]byte, error) {
	buf := new(bytes.Buffer)
	writer := csv.NewWriter(buf)

	if err := writer.Write([]string{"Amount", "Source", "Description", "Date"}); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := []string{
			rec.Amount.StringFixed(2),
			rec.Source,
			rec.Description,
			rec.DateString(),
		}
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportCSV 导出当前用户全部收入记录为 CSV
// @Summary 导出收入记录 CSV
// @Description 导出当前用户的全部收入记录，列为 Amount,Source,Description,Date
// @Tags 导出
// @Produce text/csv
// @Success 200 {file} file "CSV 文件"
// @Router /income/export-csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var records []models.Income
	if err := database.DB.Where("user_id = ?", userID).Find(&records).Error; err != nil {
		InternalError(c, "查询数据失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}

	data, err := buildIncomeCSV(records)
	if err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=income.csv")
	c.Header("Content-Length", fmt.Sprintf("%d", len(data)))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportExcel 导出当前用户全部收入记录为 Excel
// @Summary 导出收入记录 Excel
// @Description 导出当前用户的全部收入记录为带样式的 XLSX 文件，末行为合计
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "XLSX 文件"
// @Router /income/export-excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var records []models.Income
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&records).Error; err != nil {
		InternalError(c, "查询数据失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}

	// 创建 Excel 文件
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "收入记录"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"059669"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 设置列宽
	f.SetColWidth(sheetName, "A", "A", 12)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 14)

	// 写入表头
	headers := []string{"金额", "来源", "描述", "日期"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	// 写入数据
	total := decimal.Zero
	for i, rec := range records {
		row := i + 2
		amount, _ := rec.Amount.Float64()
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), amount)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Source)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.DateString())

		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), dataStyle)
		total = total.Add(rec.Amount)
	}

	// 添加合计行
	summaryRow := len(records) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	totalAmount, _ := total.Float64()
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", summaryRow), "合计")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("D%d", summaryRow), summaryStyle)

	buf, err := f.WriteToBuffer()
	if err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}

	filename := fmt.Sprintf("income_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// EmailReport 将收入报表发送到用户邮箱，附带 CSV 明细
// @Summary 邮件发送收入报表
// @Description 汇总近 6 个月的来源数据发送到当前用户邮箱，附件为全部记录的 CSV
// @Tags 导出
// @Produce html
// @Success 302 {string} string "重定向到列表页"
// @Failure 400 {object} Response "用户未设置邮箱"
// @Router /income/email-report [get]
func (h *ExportHandler) EmailReport(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "用户不存在")
		return
	}
	if user.Email == "" {
		BadRequest(c, "请先在账号中设置邮箱")
		return
	}

	var all []models.Income
	if err := database.DB.Where("user_id = ?", userID).Find(&all).Error; err != nil {
		InternalError(c, "查询数据失败: "+SafeErrorMessage(err, "请稍后重试"))
		return
	}

	csvData, err := buildIncomeCSV(all)
	if err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	// 报表正文使用近 6 个月的来源汇总
	windows := service.WindowsFor(time.Now())
	var inWindow []models.Income
	for _, rec := range all {
		if !rec.Date.Before(windows.SixMonthsAgo) && !rec.Date.After(windows.Today) {
			inWindow = append(inWindow, rec)
		}
	}

	pref := loadCurrency(userID)
	if err := h.emailService.SendIncomeReport(user.Email, user.Username, pref.Symbol(), service.CategoryTotals(inWindow), csvData); err != nil {
		setFlash(c, "error", err.Error())
		c.Redirect(http.StatusFound, "/income/")
		return
	}

	setFlash(c, "success", "报表邮件已发送至 "+user.Email)
	c.Redirect(http.StatusFound, "/income/")
}
