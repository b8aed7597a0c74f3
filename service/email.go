package service

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"incomebook/config"

	"github.com/shopspring/decimal"
	"gopkg.in/gomail.v2"
)

// EmailService 邮件服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendIncomeReport 发送收入报表邮件，附带 CSV 明细
// category 为近 6 个月按来源汇总的金额
func (s *EmailService) SendIncomeReport(toEmail, username, currency string, category map[string]decimal.Decimal, csvData []byte) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用，请在配置中开启 email.enabled")
	}

	subject := "【收入记账】收入报表"
	body := s.generateReportEmailBody(username, currency, category)

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	m.Attach("income.csv", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(csvData)
		return err
	}))

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}

// generateReportEmailBody 生成报表邮件内容
func (s *EmailService) generateReportEmailBody(username, currency string, category map[string]decimal.Decimal) string {
	// 来源按名称排序，保证邮件内容稳定
	names := make([]string, 0, len(category))
	total := decimal.Zero
	for name, amount := range category {
		names = append(names, name)
		total = total.Add(amount)
	}
	sort.Strings(names)

	var rows strings.Builder
	for _, name := range names {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td style=\"text-align:right;\">%s %s</td></tr>\n",
			name, currency, category[name].StringFixed(2)))
	}
	if len(names) == 0 {
		rows.WriteString("<tr><td colspan=\"2\">近 6 个月暂无收入记录</td></tr>\n")
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Microsoft YaHei', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #059669, #047857); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        table { width: 100%%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #e5e7eb; padding: 10px 14px; font-size: 14px; color: #333; }
        th { background: #f0fdf4; text-align: left; }
        .total { font-weight: 600; background: #fefce8; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>💰 收入记账</h1>
        </div>
        <div class="content">
            <p>尊敬的 <strong>%s</strong>，您好！</p>
            <p>以下是您近 6 个月按来源汇总的收入报表，完整明细见附件 CSV：</p>
            <table>
                <tr><th>来源</th><th style="text-align:right;">金额</th></tr>
                %s
                <tr class="total"><td>合计</td><td style="text-align:right;">%s %s</td></tr>
            </table>
        </div>
        <div class="footer">
            <p>此邮件由系统自动发送，请勿回复</p>
            <p>© 收入记账 - 您的个人财务管理助手</p>
        </div>
    </div>
</body>
</html>
`, username, rows.String(), currency, total.StringFixed(2))
}

// SendTestEmail 发送测试邮件
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("邮件服务未启用")
	}

	subject := "【收入记账】邮件配置测试"
	body := `
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>✅ 邮件配置成功</h2>
    <p>如果您收到这封邮件，说明邮件服务配置正确。</p>
    <p style="color: #666;">—— 收入记账</p>
</body>
</html>
`
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}
	return nil
}
