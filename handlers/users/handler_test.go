package users

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

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
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

func TestGetMe_NeverReturnsThePasswordHash(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "email", "password", "role"}).
		AddRow(testUserID, "joana.silva@example.com", "$2a$10$hash", "USER")
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnRows(rows)

	r := authenticatedRouter()
	r.GET("/users/me", GetMe)

	req, _ := http.NewRequest(http.MethodGet, "/users/me", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var user map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &user)
	assert.Equal(t, "joana.silva@example.com", user["email"])
	assert.Empty(t, user["password"])
}

func TestUpdatePassword_WrongCurrentPasswordIs401(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	rows := mock.NewRows([]string{"id", "email", "password", "role"}).
		AddRow(testUserID, "joana.silva@example.com", string(hash), "USER")
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnRows(rows)

	r := authenticatedRouter()
	r.PUT("/users/me/password", UpdatePassword)

	body := map[string]string{
		"currentPassword": "WrongPassword1",
		"newPassword":     "NewPassword123",
	}
	jsonData, _ := json.Marshal(body)

	req, _ := http.NewRequest(http.MethodPut, "/users/me/password", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
