package profiles

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
	"gorm.io/gorm"
)

const (
	testUserID    = "5a42e779-7f4c-47a1-8d4d-55f5be4f4f15"
	testProfileID = "0b8fd1fd-0c53-4f0e-b8f8-3e18b41b52ce"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func TestGetPublicProfile_UnknownSlugIs404(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE slug = (.+) AND published = (.+) ORDER BY "profiles"."id" LIMIT (.+)`).
		WillReturnError(gorm.ErrRecordNotFound)

	r := testutils.SetupTestRouter()
	r.GET("/p/:slug", GetPublicProfile)

	req, _ := http.NewRequest(http.MethodGet, "/p/unknown", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetPublicProfile_InactiveSubscriptionIs404(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	profileRows := mock.NewRows([]string{"id", "user_id", "slug", "published"}).
		AddRow(testProfileID, testUserID, "joana-silva", true)
	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE slug = (.+) AND published = (.+) ORDER BY "profiles"."id" LIMIT (.+)`).
		WillReturnRows(profileRows)

	userRows := mock.NewRows([]string{"id", "email", "subscription_active"}).
		AddRow(testUserID, "joana.silva@example.com", false)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnRows(userRows)

	r := testutils.SetupTestRouter()
	r.GET("/p/:slug", GetPublicProfile)

	req, _ := http.NewRequest(http.MethodGet, "/p/joana-silva", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestGetPublicProfile_ReturnsOrderedCollections(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	profileRows := mock.NewRows([]string{"id", "user_id", "slug", "public_name", "published"}).
		AddRow(testProfileID, testUserID, "joana-silva", "Joana Silva", true)
	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE slug = (.+) AND published = (.+) ORDER BY "profiles"."id" LIMIT (.+)`).
		WillReturnRows(profileRows)

	userRows := mock.NewRows([]string{"id", "email", "subscription_active"}).
		AddRow(testUserID, "joana.silva@example.com", true)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnRows(userRows)

	areaRows := mock.NewRows([]string{"id", "user_id", "position", "title"}).
		AddRow("11111111-1111-1111-1111-111111111111", testUserID, 1, "Direito Trabalhista")
	mock.ExpectQuery(`SELECT (.+) FROM "activity_areas" WHERE user_id = (.+) ORDER BY position ASC`).
		WillReturnRows(areaRows)

	linkRows := mock.NewRows([]string{"id", "user_id", "position", "title", "url"}).
		AddRow("22222222-2222-2222-2222-222222222222", testUserID, 1, "Site", "https://example.com")
	mock.ExpectQuery(`SELECT (.+) FROM "links" WHERE user_id = (.+) ORDER BY position ASC`).
		WillReturnRows(linkRows)

	galleryRows := mock.NewRows([]string{"id", "user_id", "position", "caption", "image_url"}).
		AddRow("33333333-3333-3333-3333-333333333333", testUserID, 1, "Escritório", "https://res.cloudinary.com/x/office.jpg")
	mock.ExpectQuery(`SELECT (.+) FROM "gallery_items" WHERE user_id = (.+) ORDER BY position ASC`).
		WillReturnRows(galleryRows)

	r := testutils.SetupTestRouter()
	r.GET("/p/:slug", GetPublicProfile)

	req, _ := http.NewRequest(http.MethodGet, "/p/joana-silva", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var payload PublicProfile
	json.Unmarshal(resp.Body.Bytes(), &payload)
	assert.Equal(t, "joana-silva", payload.Profile.Slug)
	assert.Len(t, payload.ActivityAreas, 1)
	assert.Len(t, payload.Links, 1)
	assert.Len(t, payload.Gallery, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfile_RejectsInvalidSlug(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	profileRows := mock.NewRows([]string{"id", "user_id", "slug"}).
		AddRow(testProfileID, testUserID, "joana-silva")
	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE user_id = (.+) ORDER BY "profiles"."id" LIMIT (.+)`).
		WillReturnRows(profileRows)

	r := testutils.SetupTestRouter()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	r.PUT("/profile", UpdateProfile)

	body := []byte(`{"slug": "Not A Slug!"}`)
	req, _ := http.NewRequest(http.MethodPut, "/profile", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestPublish_RequiresActiveSubscription(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userRows := mock.NewRows([]string{"id", "email", "subscription_active"}).
		AddRow(testUserID, "joana.silva@example.com", false)
	mock.ExpectQuery(`SELECT (.+) FROM "users" WHERE id = (.+) ORDER BY "users"."id" LIMIT (.+)`).
		WillReturnRows(userRows)

	r := testutils.SetupTestRouter()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	})
	r.POST("/profile/publish", Publish)

	req, _ := http.NewRequest(http.MethodPost, "/profile/publish", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusPaymentRequired, resp.Code)
}
