package links

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/devalexsantos/advlink-sub000/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

const testUserID = "5a42e779-7f4c-47a1-8d4d-55f5be4f4f15"

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func authenticatedRouter() *gin.Engine {
	r := testutils.SetupTestRouter()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	return r
}

func TestGetLinks_OrderedByPosition(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "user_id", "position", "title", "url"}).
		AddRow("11111111-1111-1111-1111-111111111111", testUserID, 1, "Site", "https://example.com").
		AddRow("22222222-2222-2222-2222-222222222222", testUserID, 2, "Instagram", "https://instagram.com/adv")
	mock.ExpectQuery(`SELECT (.+) FROM "links" WHERE user_id = (.+) ORDER BY position ASC`).
		WithArgs(testUserID).
		WillReturnRows(rows)

	r := authenticatedRouter()
	r.GET("/links", GetLinks)

	req, _ := http.NewRequest(http.MethodGet, "/links", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var links []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &links)
	assert.Len(t, links, 2)
	assert.Equal(t, "Site", links[0]["title"])
	assert.Equal(t, float64(1), links[0]["position"])
}

func TestCreateLink_AppendsAtTheEnd(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(position\), 0\) FROM "links" WHERE user_id = \$1`).
		WithArgs(testUserID).
		WillReturnRows(mock.NewRows([]string{"coalesce"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "links" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("33333333-3333-3333-3333-333333333333"))
	mock.ExpectCommit()

	r := authenticatedRouter()
	r.POST("/links", CreateLink)

	linkData := map[string]string{
		"title": "Agenda",
		"url":   "https://cal.com/adv",
	}
	jsonData, _ := json.Marshal(linkData)

	req, _ := http.NewRequest(http.MethodPost, "/links", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var link map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &link)
	assert.Equal(t, float64(3), link["position"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLink_RejectsInvalidURL(t *testing.T) {
	r := authenticatedRouter()
	r.POST("/links", CreateLink)

	linkData := map[string]string{
		"title": "Agenda",
		"url":   "not a url",
	}
	jsonData, _ := json.Marshal(linkData)

	req, _ := http.NewRequest(http.MethodPost, "/links", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteLink_UnknownIdIs404(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "links" WHERE id = (.+) AND user_id = (.+) ORDER BY "links"."id" LIMIT (.+)`).
		WillReturnRows(mock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	r := authenticatedRouter()
	r.DELETE("/links/:id", DeleteLink)

	req, _ := http.NewRequest(http.MethodDelete, "/links/44444444-4444-4444-4444-444444444444", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestReorderLinks_DuplicateIdIsRejectedBeforeTheDatabase(t *testing.T) {
	r := authenticatedRouter()
	r.PUT("/links/reorder", ReorderLinks)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": "11111111-1111-1111-1111-111111111111", "position": 1},
			{"id": "11111111-1111-1111-1111-111111111111", "position": 2},
		},
	}
	jsonData, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPut, "/links/reorder", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "duplicate item id")
}

func TestReorderLinks_ForeignIdIs403(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "links" WHERE id IN \(\$1,\$2\) AND user_id = \$3`).
		WithArgs("11111111-1111-1111-1111-111111111111", "99999999-9999-9999-9999-999999999999", testUserID).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	r := authenticatedRouter()
	r.PUT("/links/reorder", ReorderLinks)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": "11111111-1111-1111-1111-111111111111", "position": 1},
			{"id": "99999999-9999-9999-9999-999999999999", "position": 2},
		},
	}
	jsonData, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPut, "/links/reorder", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReorderLinks_AppliesMovesAndReturnsTheNewList(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "links" WHERE id IN \(\$1,\$2\) AND user_id = \$3`).
		WillReturnRows(mock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectExec(`UPDATE "links" SET (.+) WHERE id = (.+) AND user_id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "links" SET (.+) WHERE id = (.+) AND user_id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows := mock.NewRows([]string{"id", "user_id", "position", "title", "url"}).
		AddRow("22222222-2222-2222-2222-222222222222", testUserID, 1, "Instagram", "https://instagram.com/adv").
		AddRow("11111111-1111-1111-1111-111111111111", testUserID, 2, "Site", "https://example.com")
	mock.ExpectQuery(`SELECT (.+) FROM "links" WHERE user_id = (.+) ORDER BY position ASC`).
		WithArgs(testUserID).
		WillReturnRows(rows)

	r := authenticatedRouter()
	r.PUT("/links/reorder", ReorderLinks)

	body := map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": "22222222-2222-2222-2222-222222222222", "position": 1},
			{"id": "11111111-1111-1111-1111-111111111111", "position": 2},
		},
	}
	jsonData, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPut, "/links/reorder", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var links []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &links)
	assert.Len(t, links, 2)
	assert.Equal(t, "Instagram", links[0]["title"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
