package activityareas

import (
	"errors"
	"net/http"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/ordering"
	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func store() *ordering.Store[models.ActivityArea, *models.ActivityArea] {
	return ordering.NewStore[models.ActivityArea, *models.ActivityArea](db.DB)
}

// @Summary List the activity areas
// @Description Return the connected user's practice areas sorted by position
// @Tags activity-areas
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ActivityArea
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /activity-areas [get]
func GetActivityAreas(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activity areas"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create an activity area
// @Description Append a practice area at the end of the collection, with an optional cover image
// @Tags activity-areas
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title of the practice area"
// @Param description formData string false "Description"
// @Param cover formData file false "Cover image"
// @Security BearerAuth
// @Success 201 {object} models.ActivityArea
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /activity-areas [post]
func CreateActivityArea(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	title := c.Request.FormValue("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	area := models.ActivityArea{
		UserID:      userID.(string),
		Title:       title,
		Description: c.Request.FormValue("description"),
	}

	file, err := c.FormFile("cover")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file, "activity_area_covers", "cover")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading cover: " + err.Error()})
			return
		}
		area.CoverURL = imageURL
	}

	if err := store().Create(&area); err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the activity area in CreateActivityArea")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the activity area"})
		return
	}

	utils.LogSuccessWithUser(userID, "Activity area created in CreateActivityArea")
	c.JSON(http.StatusCreated, area)
}

// @Summary Update an activity area
// @Description Update the title, description or cover image of one practice area
// @Tags activity-areas
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Activity area ID"
// @Param title formData string false "Title of the practice area"
// @Param description formData string false "Description"
// @Param cover formData file false "New cover image"
// @Security BearerAuth
// @Success 200 {object} models.ActivityArea
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Activity area not found"
// @Router /activity-areas/{id} [put]
func UpdateActivityArea(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity area ID"})
		return
	}

	area, err := store().Find(userID.(string), id)
	if err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity area not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the activity area"})
		return
	}

	if title := c.Request.FormValue("title"); title != "" {
		area.Title = title
	}
	if description := c.Request.FormValue("description"); description != "" {
		area.Description = description
	}

	file, err := c.FormFile("cover")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file, "activity_area_covers", "cover")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading cover: " + err.Error()})
			return
		}
		area.CoverURL = imageURL
	}

	if err := store().Save(area); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the activity area"})
		return
	}
	c.JSON(http.StatusOK, area)
}

// @Summary Delete an activity area
// @Description Delete one practice area and close the gap in positions
// @Tags activity-areas
// @Produce json
// @Param id path string true "Activity area ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Activity area deleted"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Activity area not found"
// @Router /activity-areas/{id} [delete]
func DeleteActivityArea(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid activity area ID"})
		return
	}

	if err := store().Delete(userID.(string), id); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Activity area not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error deleting the activity area in DeleteActivityArea")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the activity area"})
		return
	}

	utils.LogSuccessWithUser(userID, "Activity area deleted in DeleteActivityArea")
	c.JSON(http.StatusOK, gin.H{"message": "Activity area deleted"})
}

// @Summary Reorder the activity areas
// @Description Apply a full set of new positions to the connected user's practice areas
// @Tags activity-areas
// @Accept json
// @Produce json
// @Param positions body ordering.ReorderInput true "New positions"
// @Security BearerAuth
// @Success 200 {array} models.ActivityArea
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Router /activity-areas/reorder [put]
func ReorderActivityAreas(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input ordering.ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if err := ordering.ValidateMoves(input.Items); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := store().Reorder(userID.(string), input.Items); err != nil {
		if errors.Is(err, ordering.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "At least one activity area does not belong to the user"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error reordering the activity areas in ReorderActivityAreas")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reordering the activity areas"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching activity areas"})
		return
	}
	c.JSON(http.StatusOK, items)
}
