package gallery

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

func store() *ordering.Store[models.GalleryItem, *models.GalleryItem] {
	return ordering.NewStore[models.GalleryItem, *models.GalleryItem](db.DB)
}

// @Summary List the gallery
// @Description Return the connected user's gallery items sorted by position
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GalleryItem
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /gallery [get]
func GetGallery(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Add a gallery item
// @Description Upload a photo and append it at the end of the gallery
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo"
// @Param caption formData string false "Caption"
// @Security BearerAuth
// @Success 201 {object} models.GalleryItem
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /gallery [post]
func CreateGalleryItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
		return
	}

	imageURL, err := utils.UploadImage(file, "gallery", "photo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
		return
	}

	item := models.GalleryItem{
		UserID:   userID.(string),
		Caption:  c.Request.FormValue("caption"),
		ImageURL: imageURL,
	}
	if err := store().Create(&item); err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating the gallery item in CreateGalleryItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the gallery item"})
		return
	}

	utils.LogSuccessWithUser(userID, "Gallery item created in CreateGalleryItem")
	c.JSON(http.StatusCreated, item)
}

// @Summary Update a gallery item
// @Description Update the caption or replace the photo of one gallery item
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Gallery item ID"
// @Param image formData file false "New photo"
// @Param caption formData string false "Caption"
// @Security BearerAuth
// @Success 200 {object} models.GalleryItem
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Gallery item not found"
// @Router /gallery/{id} [put]
func UpdateGalleryItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery item ID"})
		return
	}

	item, err := store().Find(userID.(string), id)
	if err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the gallery item"})
		return
	}

	if caption := c.Request.FormValue("caption"); caption != "" {
		item.Caption = caption
	}

	file, err := c.FormFile("image")
	if err == nil && file != nil {
		imageURL, err := utils.UploadImage(file, "gallery", "photo")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading image: " + err.Error()})
			return
		}
		item.ImageURL = imageURL
	}

	if err := store().Save(item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the gallery item"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete a gallery item
// @Description Delete one gallery item and close the gap in positions
// @Tags gallery
// @Produce json
// @Param id path string true "Gallery item ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Gallery item deleted"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: Gallery item not found"
// @Router /gallery/{id} [delete]
func DeleteGalleryItem(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gallery item ID"})
		return
	}

	if err := store().Delete(userID.(string), id); err != nil {
		if errors.Is(err, ordering.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gallery item not found"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error deleting the gallery item in DeleteGalleryItem")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting the gallery item"})
		return
	}

	utils.LogSuccessWithUser(userID, "Gallery item deleted in DeleteGalleryItem")
	c.JSON(http.StatusOK, gin.H{"message": "Gallery item deleted"})
}

// @Summary Reorder the gallery
// @Description Apply a full set of new positions to the connected user's gallery
// @Tags gallery
// @Accept json
// @Produce json
// @Param positions body ordering.ReorderInput true "New positions"
// @Security BearerAuth
// @Success 200 {array} models.GalleryItem
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Forbidden"
// @Router /gallery/reorder [put]
func ReorderGallery(c *gin.Context) {
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
			c.JSON(http.StatusForbidden, gin.H{"error": "At least one gallery item does not belong to the user"})
			return
		}
		utils.LogErrorWithUser(userID, err, "Error reordering the gallery in ReorderGallery")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reordering the gallery"})
		return
	}

	items, err := store().List(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching the gallery"})
		return
	}
	c.JSON(http.StatusOK, items)
}
