package leads

import (
	"net/http"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"
	mailsmodels "github.com/devalexsantos/advlink-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a contact request
// @Description Public contact form of a published page. The owner gets notified by mail.
// @Tags leads
// @Accept json
// @Produce json
// @Param slug path string true "Profile slug"
// @Param lead body models.LeadCreate true "Contact information"
// @Success 201 {object} map[string]string "message: Contact request sent"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 404 {object} map[string]string "error: Page not found"
// @Router /p/{slug}/leads [post]
func CreateLead(c *gin.Context) {
	slug := c.Param("slug")

	var profile models.Profile
	if err := db.DB.Where("slug = ? AND published = ?", slug, true).First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var owner models.User
	if err := db.DB.First(&owner, "id = ?", profile.UserID).Error; err != nil || !owner.SubscriptionActive {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	var input models.LeadCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	lead := models.Lead{
		ProfileID: profile.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
	}
	if err := db.DB.Create(&lead).Error; err != nil {
		utils.LogError(err, "Error creating the lead in CreateLead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error sending the contact request"})
		return
	}

	mailsmodels.LeadNotification(owner.Email, lead)

	c.JSON(http.StatusCreated, gin.H{"message": "Contact request sent"})
}

// @Summary List the contact requests
// @Description Return the contact requests received through the connected user's page
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Lead
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /leads [get]
func GetLeads(c *gin.Context) {
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

	var leads []models.Lead
	if err := db.DB.Where("profile_id = ?", profile.ID).Order("created_at DESC").Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the contact requests"})
		return
	}
	c.JSON(http.StatusOK, leads)
}
