package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sourceRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "sort"})
}

func TestSourceHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows().
			AddRow(1, "工资", 10).
			AddRow(2, "奖金", 20))

	router := newTestRouter()
	router.GET("/income/sources", NewSourceHandler().List)

	req := httptest.NewRequest("GET", "/income/sources", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 200, resp.Code)
	data, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSourceHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WithArgs("稿费", 1).
		WillReturnRows(sourceRows())

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `sources`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.POST("/admin/sources", NewSourceHandler().Create)

	req := httptest.NewRequest("POST", "/admin/sources", strings.NewReader(`{"name":"稿费","sort":70}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "创建成功")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSourceHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows().AddRow(1, "工资", 10))

	router := newTestRouter()
	router.POST("/admin/sources", NewSourceHandler().Create)

	req := httptest.NewRequest("POST", "/admin/sources", strings.NewReader(`{"name":"工资"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "来源名称已存在")
}

func TestSourceHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows().AddRow(3, "理财", 30))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sources`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows().AddRow(3, "理财收益", 30))

	router := newTestRouter()
	router.PUT("/admin/sources/:id", NewSourceHandler().Update)

	req := httptest.NewRequest("PUT", "/admin/sources/3", strings.NewReader(`{"name":"理财收益"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "更新成功")
	assert.Contains(t, w.Body.String(), "理财收益")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSourceHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows().AddRow(3, "理财", 30))

	// 软删除走 UPDATE
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `sources`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := newTestRouter()
	router.DELETE("/admin/sources/:id", NewSourceHandler().Delete)

	req := httptest.NewRequest("DELETE", "/admin/sources/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "删除成功")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSourceHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `sources`").
		WillReturnRows(sourceRows())

	router := newTestRouter()
	router.DELETE("/admin/sources/:id", NewSourceHandler().Delete)

	req := httptest.NewRequest("DELETE", "/admin/sources/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "来源不存在")
}
