package links

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

func store() *ordering.Store[models.Link, *models.Link] {
	return ordering.NewStore[models.Link, *models.Link](db.DB)
}

// @Summary List the links
// @Description Return the connected user's links sorted by position
// @Tags links
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Link
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /links [get]
func GetLinks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching links"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Create a link
// @Description Append a link at the end of the connected user's collection
// @Tags links
// @Accept json
// @Produce json
// @Param link body models.LinkCreate true "Link information"
// @Security BearerAuth
// @Success 201 {object} models.Link
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /links [post]
func CreateLink(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.LinkCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	link := models.Link{
		UserID: userID.(string),
		Title:  input.Title,
		URL:    input.URL,
	}
	if err := store().Create(&link); err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the link in CreateLink")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the link"})
		return
	}

	utils.LogSuccessWithUser(userID, "Link created in CreateLink")
	c.JSON(http.StatusCreated, link)
}

// @Summary Update a link
// @Description Update the title or URL of one of the connected user's links
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "Link ID"
// @Param link body models.LinkUpdate true "Fields to update"
// @Security BearerAuth
// @Success 200 {object} models.Link
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Link not found"
// @Router /links/{id} [put]
func UpdateLink(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link ID"})
		return
	}

	var input models.LinkUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	link, err := store().Find(userID.(string), id)
	if err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the link"})
		return
	}

	if input.Title != nil {
		link.Title = *input.Title
	}
	if input.URL != nil {
		link.URL = *input.URL
	}
	if err := store().Save(link); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the link"})
		return
	}
	c.JSON(http.StatusOK, link)
}

// @Summary Delete a link
// @Description Delete one of the connected user's links and close the gap in positions
// @Tags links
// @Produce json
// @Param id path string true "Link ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Link deleted"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Link not found"
// @Router /links/{id} [delete]
func DeleteLink(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid link ID"})
		return
	}

	if err := store().Delete(userID.(string), id); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error deleting the link in DeleteLink")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the link"})
		return
	}

	utils.LogSuccessWithUser(userID, "Link deleted in DeleteLink")
	c.JSON(http.StatusOK, gin.H{"message": "Link deleted"})
}

// @Summary Reorder the links
// @Description Apply a full set of new positions to the connected user's links
// @Tags links
// @Accept json
// @Produce json
// @Param positions body ordering.ReorderInput true "New positions"
// @Security BearerAuth
// @Success 200 {array} models.Link
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Router /links/reorder [put]
func ReorderLinks(c *gin.Context) {
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
			c.JSON(http.StatusForbidden, gin.H{"error": "At least one link does not belong to the user"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error reordering the links in ReorderLinks")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reordering the links"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching links"})
		return
	}
	c.JSON(http.StatusOK, items)
}
