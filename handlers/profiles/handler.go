package profiles

import (
	"net/http"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicProfile is the payload served on /p/:slug: the profile plus every
// ordered collection, already sorted by position.
type PublicProfile struct {
	Profile       models.Profile        `json:"profile"`
	ActivityAreas []models.ActivityArea `json:"activityAreas"`
	Links         []models.Link         `json:"links"`
	Gallery       []models.GalleryItem  `json:"gallery"`
}

// @Summary Get the connected user's profile
// @Description Return the profile of the connected user
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Profile not found"
// @Router /profile [get]
func GetMyProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Update the profile
// @Description Update the connected user's profile, absent fields are left untouched
// @Tags profiles
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 409 {object} map[string]string "error: Slug already taken"
// @Router /profile [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Slug != nil && *input.Slug != profile.Slug {
		if !utils.ValidateSlug(*input.Slug) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slug format"})
			return
		}
		var count int64
		db.DB.Model(&models.Profile{}).Where("slug = ? AND user_id <> ?", *input.Slug, userID).Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Slug already taken"})
			return
		}
		profile.Slug = *input.Slug
	}

	for _, color := range []*string{input.ThemePrimaryColor, input.ThemeBackgroundColor, input.ThemeTextColor} {
		if color != nil && !utils.ValidateHexColor(*color) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid color format, expected #RRGGBB"})
			return
		}
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&profile.PublicName, input.PublicName)
	applyString(&profile.Headline, input.Headline)
	applyString(&profile.Bio, input.Bio)
	applyString(&profile.Phone, input.Phone)
	applyString(&profile.Whatsapp, input.Whatsapp)
	applyString(&profile.City, input.City)
	applyString(&profile.Uf, input.Uf)
	applyString(&profile.ThemePrimaryColor, input.ThemePrimaryColor)
	applyString(&profile.ThemeBackgroundColor, input.ThemeBackgroundColor)
	applyString(&profile.ThemeTextColor, input.ThemeTextColor)
	applyString(&profile.SeoTitle, input.SeoTitle)
	applyString(&profile.SeoDescription, input.SeoDescription)

	if err := db.DB.Save(&profile).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating the profile in UpdateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// @Summary Upload the profile photo
// @Description Upload a new profile photo for the connected user
// @Tags profiles
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Profile photo"
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /profile/photo [post]
func UploadProfilePhoto(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo is required"})
		return
	}

	photoURL, err := utils.UploadImage(file, "profile_photos", "profile")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading photo: " + err.Error()})
		return
	}

	if err := db.DB.Model(&profile).Update("photo_url", photoURL).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the profile"})
		return
	}
	profile.PhotoURL = photoURL
	c.JSON(http.StatusOK, profile)
}

// @Summary Publish the public page
// @Description Make the public page reachable. Requires an active subscription.
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 402 {object} map[string]string "error: Active subscription required"
// @Router /profile/publish [post]
func Publish(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !user.SubscriptionActive {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Active subscription required to publish the page"})
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if err := db.DB.Model(&profile).Update("published", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error publishing the page"})
		return
	}
	profile.Published = true

	utils.LogSuccessWithUser(userID, "Page published in Publish")
	c.JSON(http.StatusOK, profile)
}

// @Summary Unpublish the public page
// @Description Take the public page offline
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /profile/unpublish [post]
func Unpublish(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
		return
	}

	if err := db.DB.Model(&profile).Update("published", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unpublishing the page"})
		return
	}
	profile.Published = false
	c.JSON(http.StatusOK, profile)
}

// @Summary Get a public page
// @Description Return a published profile with its ordered collections. Pages of
// @Description unpublished profiles or inactive subscriptions answer 404.
// @Tags profiles
// @Produce json
// @Param slug path string true "Profile slug"
// @Success 200 {object} PublicProfile
// @Failure 404 {object} map[string]string "error: Page not found"
// @Router /p/{slug} [get]
func GetPublicProfile(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.Profile
	if err := db.DB.Where("slug = ? AND published = ?", slug, true).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	// An expired subscription takes the page offline without touching the
	// published flag, so the owner gets it back untouched when they resubscribe.
	var user models.User
	if err := db.DB.First(&user, "id = ?", profile.UserID).Error; err != nil || !user.SubscriptionActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	payload := PublicProfile{Profile: profile}
	if err := loadCollections(db.DB, profile.UserID, &payload); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the page"})
		return
	}
	c.JSON(http.StatusOK, payload)
}

func loadCollections(tx *gorm.DB, userID string, payload *PublicProfile) error {
	if err := tx.Where("user_id = ?", userID).Order("position ASC").Find(&payload.ActivityAreas).Error; err != nil {
		return err
	}
	if err := tx.Where("user_id = ?", userID).Order("position ASC").Find(&payload.Links).Error; err != nil {
		return err
	}
	return tx.Where("user_id = ?", userID).Order("position ASC").Find(&payload.Gallery).Error
}
