package api

import (
	"net/http"
	"strings"

	"incomebook/config"
	"incomebook/database"
	"incomebook/middleware"
	"incomebook/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler 认证处理器，提供登录/注册/退出的页面流程
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// RegisterForm 注册表单
type RegisterForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Email    string `form:"email"`
}

// LoginForm 登录表单
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// cookieOptions 根据运行模式返回 Cookie 的安全选项
// release 模式下启用 Secure（仅 HTTPS 传输），SameSite=Lax 防止跨站请求携带 Cookie
func cookieOptions() (secure bool, sameSite http.SameSite) {
	if config.GlobalConfig != nil && config.GlobalConfig.Server.Mode == "release" {
		secure = true
	}
	sameSite = http.SameSiteLaxMode
	return
}

// ShowLogin 渲染登录页
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	kind, message := takeFlash(c)
	c.HTML(http.StatusOK, "auth_login.html", gin.H{
		"Next":      c.Query("next"),
		"FlashKind": kind,
		"Flash":     message,
	})
}

// Login 处理登录表单
// 成功后签发会话 Cookie 并跳转到 next 或收入列表页
func (h *AuthHandler) Login(c *gin.Context) {
	var form LoginForm
	_ = c.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)

	renderError := func(message string) {
		c.HTML(http.StatusOK, "auth_login.html", gin.H{
			"Next":      c.PostForm("next"),
			"FlashKind": "error",
			"Flash":     message,
			"Username":  form.Username,
		})
	}

	if form.Username == "" || form.Password == "" {
		renderError("请输入用户名和密码")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ? OR email = ?", form.Username, form.Username).First(&user).Error; err != nil {
		renderError("用户名或密码错误")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		renderError("用户名或密码错误")
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Username, h.cfg.JWT.ExpireTime)
	if err != nil {
		renderError("登录失败，请稍后重试")
		return
	}

	secure, sameSite := cookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, token, int(h.cfg.JWT.ExpireTime.Seconds()), "/", "", secure, true)

	next := c.PostForm("next")
	if next == "" || !strings.HasPrefix(next, "/") {
		next = "/income/"
	}
	c.Redirect(http.StatusFound, next)
}

// ShowRegister 渲染注册页
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "auth_register.html", gin.H{})
}

// Register 处理注册表单
// 创建用户并写入默认币种偏好，成功后跳转登录页
func (h *AuthHandler) Register(c *gin.Context) {
	var form RegisterForm
	_ = c.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)

	renderError := func(message string) {
		c.HTML(http.StatusOK, "auth_register.html", gin.H{
			"FlashKind": "error",
			"Flash":     message,
			"Username":  form.Username,
			"Email":     form.Email,
		})
	}

	if len(form.Username) < 3 || len(form.Username) > 50 {
		renderError("用户名长度应为 3-50 个字符")
		return
	}
	if len(form.Password) < 6 {
		renderError("密码至少 6 个字符")
		return
	}

	// 检查用户名是否已存在
	var existing models.User
	if err := database.DB.Where("username = ?", form.Username).First(&existing).Error; err == nil {
		renderError("用户名已存在")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		renderError("注册失败，请稍后重试")
		return
	}

	user := models.User{
		Username: form.Username,
		Password: string(hashed),
		Email:    form.Email,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		renderError("注册失败: " + SafeErrorMessage(err, "请稍后重试"))
		return
	}

	// 写入默认币种偏好，列表页展示时读取
	pref := models.UserPreference{UserID: user.ID, Currency: h.cfg.App.Currency}
	_ = database.DB.Create(&pref).Error

	setFlash(c, "success", "注册成功，请登录")
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// Logout 退出登录，清除会话 Cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	secure, sameSite := cookieOptions()
	c.SetSameSite(sameSite)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", secure, true)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
