package api

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// 一次性提示消息，重定向后在下一次页面渲染时取出并清除
const (
	flashCookie     = "flash"
	flashKindCookie = "flash_kind"
)

// setFlash 写入一次性提示消息
// kind 为 success 或 error，模板据此选择样式
func setFlash(c *gin.Context, kind, message string) {
	secure, _ := cookieOptions()
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", secure, true)
	c.SetCookie(flashKindCookie, kind, 60, "/", "", secure, true)
}

// takeFlash 取出并清除提示消息，没有则返回空串
func takeFlash(c *gin.Context) (kind, message string) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", ""
	}
	message, _ = url.QueryUnescape(raw)
	kind, _ = c.Cookie(flashKindCookie)
	if kind == "" {
		kind = "success"
	}
	secure, _ := cookieOptions()
	c.SetCookie(flashCookie, "", -1, "/", "", secure, true)
	c.SetCookie(flashKindCookie, "", -1, "/", "", secure, true)
	return kind, message
}
