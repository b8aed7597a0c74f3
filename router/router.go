package router

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"incomebook/api"
	"incomebook/config"
	"incomebook/database"
	_ "incomebook/docs"
	"incomebook/middleware"
	"incomebook/models"
	"incomebook/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	// 嵌入的页面模板与静态资源
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html")))
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.StaticFS("/static", http.FS(staticFS))

	// 首页跳转到收入列表
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/income/")
	})

	// 认证页面（无需登录）
	authHandler := api.NewAuthHandler(cfg)
	auth := r.Group("/authentication")
	{
		auth.GET("/login", authHandler.ShowLogin)
		auth.POST("/login", middleware.LoginRateLimit(10, time.Minute), authHandler.Login)
		auth.GET("/register", authHandler.ShowRegister)
		auth.POST("/register", authHandler.Register)
		auth.GET("/logout", authHandler.Logout)
	}

	// 收入模块，全部需要会话认证
	incomeHandler := api.NewIncomeHandler()
	exportHandler := api.NewExportHandler(cfg)
	sourceHandler := api.NewSourceHandler()
	income := r.Group("/income")
	income.Use(middleware.SessionAuth())
	{
		income.GET("/", incomeHandler.Index)
		income.GET("/add", incomeHandler.ShowAdd)
		income.POST("/add", incomeHandler.Add)
		income.GET("/edit/:id", incomeHandler.ShowEdit)
		income.POST("/edit/:id", incomeHandler.Edit)
		income.GET("/delete/:id", incomeHandler.Delete)

		income.POST("/search", incomeHandler.Search)
		income.GET("/stats", incomeHandler.ShowStats)
		income.GET("/category-summary", incomeHandler.CategorySummary)

		income.GET("/export-csv", exportHandler.ExportCSV)
		income.GET("/export-excel", exportHandler.ExportExcel)
		income.GET("/email-report", exportHandler.EmailReport)

		income.GET("/sources", sourceHandler.List)
	}

	// 来源参考表维护，仅管理员
	admin := r.Group("/admin")
	admin.Use(middleware.SessionAuth(), middleware.AdminRequired(lookupIsAdmin))
	{
		admin.POST("/sources", sourceHandler.Create)
		admin.PUT("/sources/:id", sourceHandler.Update)
		admin.DELETE("/sources/:id", sourceHandler.Delete)
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// lookupIsAdmin 查询用户是否为管理员
func lookupIsAdmin(userID uint) (bool, error) {
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return false, err
	}
	return user.IsAdmin, nil
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
