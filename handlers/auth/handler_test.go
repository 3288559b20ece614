package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/devalexsantos/advlink-sub000/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestCreateUser_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs("joana.silva@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15"))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE slug = (.+) ORDER BY "profiles"."id" LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "profiles" (.+) RETURNING "id"`).
		WillReturnRows(mock.NewRows([]string{"id"}).AddRow("0b8fd1fd-0c53-4f0e-b8f8-3e18b41b52ce"))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	userData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusCreated, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "User created successfully", respBody["message"])
	assert.Equal(t, "joana.silva@example.com", respBody["email"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_EmptyEmail(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	userData := map[string]string{
		"email":    "",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCreateUser_WeakPassword(t *testing.T) {
	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	userData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "password",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "lowercase")
}

func TestCreateUser_EmailAlreadyUsed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	rows := mock.NewRows([]string{"id", "email"}).
		AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15", "joana.silva@example.com")
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs("joana.silva@example.com", 1).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.POST("/register", CreateUser)

	userData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(userData)

	req, _ := http.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestLogin_Success(t *testing.T) {
	os.Setenv("JWT_SECRET", "test_secret")
	defer os.Unsetenv("JWT_SECRET")

	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	rows := mock.NewRows([]string{"id", "email", "password", "role", "email_verified_at"}).
		AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15", "joana.silva@example.com", string(hash), "USER", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs("joana.silva@example.com", 1).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.NotEmpty(t, respBody["token"])
}

func TestLogin_EmailNotVerified(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	rows := mock.NewRows([]string{"id", "email", "password", "role", "email_verified_at"}).
		AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15", "joana.silva@example.com", string(hash), "USER", nil)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs("joana.silva@example.com", 1).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "Password123",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Email not verified", respBody["error"])
}

func TestLogin_WrongPassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, _ := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	rows := mock.NewRows([]string{"id", "email", "password", "role", "email_verified_at"}).
		AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15", "joana.silva@example.com", string(hash), "USER", time.Now())
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE email = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs("joana.silva@example.com", 1).
		WillReturnRows(rows)

	r := testutils.SetupTestRouter()
	r.POST("/login", Login)

	loginData := map[string]string{
		"email":    "joana.silva@example.com",
		"password": "WrongPassword1",
	}
	jsonData, _ := json.Marshal(loginData)

	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestValidEmail_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	code := "4242e779-7f4c-47a1-8d4d-55f5be4f4f15"
	rows := mock.NewRows([]string{"id", "email", "confirmation_code"}).
		AddRow("5a42e779-7f4c-47a1-8d4d-55f5be4f4f15", "joana.silva@example.com", code)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE confirmation_code = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WithArgs(code, 1).
		WillReturnRows(rows)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := testutils.SetupTestRouter()
	r.GET("/valid-email/:code", ValidEmail)

	req, _ := http.NewRequest(http.MethodGet, "/valid-email/"+code, nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidEmail_UnknownCode(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE confirmation_code = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/valid-email/:code", ValidEmail)

	req, _ := http.NewRequest(http.MethodGet, "/valid-email/nope", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
