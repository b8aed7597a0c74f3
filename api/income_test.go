package api

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"incomebook/web"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter 创建加载了页面模板的测试路由
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(template.Must(template.ParseFS(web.TemplatesFS, "templates/*.html")))
	return router
}

// setUserIDMiddleware 测试用中间件，模拟已登录用户
func setUserIDMiddleware(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Set("username", "testuser")
		c.Next()
	}
}

func incomeRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "amount", "date", "source", "description", "created_at", "updated_at"})
}

func TestIncomeHandler_Index(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `incomes`").
		WithArgs(uint(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(7))

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(1, 1, "1500.50", day, "工资", "七月工资", day, day).
			AddRow(2, 1, "200.00", day.AddDate(0, 0, -1), "兼职", "周末兼职", day, day))

	mock.ExpectQuery("SELECT .* FROM `user_preferences`").
		WithArgs(uint(1), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "currency"}).
			AddRow(1, 1, "CNY - ¥"))

	router := newTestRouter()
	router.GET("/income/", setUserIDMiddleware(1), NewIncomeHandler().Index)

	req := httptest.NewRequest("GET", "/income/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "七月工资")
	assert.Contains(t, w.Body.String(), "周末兼职")
	assert.Contains(t, w.Body.String(), "¥")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Add(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `incomes`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/income/add", setUserIDMiddleware(1), NewIncomeHandler().Add)

	w := postForm(router, "/income/add", url.Values{
		"amount":      {"1500.50"},
		"description": {"七月工资"},
		"income_date": {"2024-07-01"},
		"source":      {"工资"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/income/", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Add_MissingAmount(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 校验失败回显表单时重新加载来源下拉
	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort"}))

	router := newTestRouter()
	router.POST("/income/add", setUserIDMiddleware(1), NewIncomeHandler().Add)

	w := postForm(router, "/income/add", url.Values{
		"description": {"七月工资"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "金额不能为空")
	// 已填写的字段回显
	assert.Contains(t, w.Body.String(), "七月工资")
}

func TestIncomeHandler_Add_MissingDescription(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "sort"}))

	router := newTestRouter()
	router.POST("/income/add", setUserIDMiddleware(1), NewIncomeHandler().Add)

	w := postForm(router, "/income/add", url.Values{
		"amount": {"100"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "描述不能为空")
}

func TestIncomeHandler_Edit(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(3), 1).
		WillReturnRows(incomeRows().
			AddRow(3, 1, "100.00", day, "工资", "旧描述", day, day))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/income/edit/:id", setUserIDMiddleware(1), NewIncomeHandler().Edit)

	w := postForm(router, "/income/edit/3", url.Values{
		"amount":      {"250.00"},
		"description": {"新描述"},
		"income_date": {"2024-07-02"},
		"source":      {"奖金"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/income/", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Edit_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows())

	router := newTestRouter()
	router.POST("/income/edit/:id", setUserIDMiddleware(1), NewIncomeHandler().Edit)

	w := postForm(router, "/income/edit/99", url.Values{
		"amount":      {"250.00"},
		"description": {"新描述"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "记录不存在")
}

func TestIncomeHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WithArgs(uint(3), 1).
		WillReturnRows(incomeRows().
			AddRow(3, 1, "100.00", day, "工资", "待删除", day, day))

	// 物理删除
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `incomes`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.GET("/income/delete/:id", setUserIDMiddleware(1), NewIncomeHandler().Delete)

	req := httptest.NewRequest("GET", "/income/delete/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/income/", w.Header().Get("Location"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete_Forbidden(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	day := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	// 记录属于用户 2，当前登录用户 1
	mock.ExpectQuery("SELECT .* FROM `incomes`").
		WillReturnRows(incomeRows().
			AddRow(3, 2, "100.00", day, "工资", "他人记录", day, day))

	router := newTestRouter()
	router.GET("/income/delete/:id", setUserIDMiddleware(1), NewIncomeHandler().Delete)

	req := httptest.NewRequest("GET", "/income/delete/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "无权操作他人的记录")
}

func TestIncomeHandler_Delete_InvalidID(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := newTestRouter()
	router.GET("/income/delete/:id", setUserIDMiddleware(1), NewIncomeHandler().Delete)

	req := httptest.NewRequest("GET", "/income/delete/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "无效的记录ID")
}

func TestIncomeFormParse(t *testing.T) {
	form := IncomeForm{Amount: "100.50", Description: "工资", IncomeDate: "2024-07-01"}
	amount, date, message := form.parse()
	assert.Empty(t, message)
	assert.Equal(t, "100.5", amount.String())
	assert.Equal(t, "2024-07-01", date.Format("2006-01-02"))

	// 日期缺省按当天记账
	form = IncomeForm{Amount: "100", Description: "工资"}
	_, date, message = form.parse()
	assert.Empty(t, message)
	assert.Equal(t, time.Now().Format("2006-01-02"), date.Format("2006-01-02"))

	form = IncomeForm{Amount: "abc", Description: "工资"}
	_, _, message = form.parse()
	assert.Equal(t, "金额格式不正确", message)

	form = IncomeForm{Amount: "100", Description: "工资", IncomeDate: "07/01/2024"}
	_, _, message = form.parse()
	assert.Equal(t, "日期格式不正确，应为 2006-01-02", message)
}
