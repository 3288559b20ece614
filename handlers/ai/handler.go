package ai

import (
	"fmt"
	"net/http"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
)

// BioInput drives the bio suggestion. Keywords are free text the
// professional gives about themselves.
type BioInput struct {
	Keywords string `json:"keywords" binding:"required"`
	Tone     string `json:"tone"`
}

// AreaCopyInput drives the practice area description suggestion.
type AreaCopyInput struct {
	Title    string `json:"title" binding:"required"`
	Keywords string `json:"keywords"`
}

// @Summary Suggest a bio
// @Description Generate a bio suggestion for the public page from free-text keywords
// @Tags ai
// @Accept json
// @Produce json
// @Param input body BioInput true "Keywords and optional tone"
// @Security BearerAuth
// @Success 200 {object} map[string]string "text: Suggested bio"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Generation unavailable"
// @Router /ai/bio [post]
func SuggestBio(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input BioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var profile models.Profile
	db.DB.Where("user_id = ?", userID).First(&profile)

	tone := input.Tone
	if tone == "" {
		tone = "professional and approachable"
	}
	prompt := fmt.Sprintf(
		"Write a short bio in Brazilian Portuguese for the public page of a legal professional named %q in %s/%s. Tone: %s. About them: %s. Maximum 400 characters, no markdown.",
		profile.PublicName, profile.City, profile.Uf, tone, input.Keywords,
	)

	text, err := utils.GenerateText(c.Request.Context(), prompt)
	if err != nil || text == "" {
		utils.LogErrorWithUser(userID, err, "Error generating a bio in SuggestBio")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generation unavailable, try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// @Summary Suggest a practice area description
// @Description Generate a description suggestion for one practice area
// @Tags ai
// @Accept json
// @Produce json
// @Param input body AreaCopyInput true "Practice area title and optional keywords"
// @Security BearerAuth
// @Success 200 {object} map[string]string "text: Suggested description"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Generation unavailable"
// @Router /ai/activity-area [post]
func SuggestAreaCopy(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input AreaCopyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	prompt := fmt.Sprintf(
		"Write a short description in Brazilian Portuguese for the practice area %q of a legal professional's public page. Extra context: %s. Maximum 300 characters, plain text, written for potential clients, no legal jargon.",
		input.Title, input.Keywords,
	)

	text, err := utils.GenerateText(c.Request.Context(), prompt)
	if err != nil || text == "" {
		utils.LogErrorWithUser(userID, err, "Error generating a description in SuggestAreaCopy")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Generation unavailable, try again later"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
