package users

import (
	"net/http"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// @Summary Get the connected account
// @Description Return the account of the connected user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetMe(c *gin.Context) {
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

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// @Summary Update the connected account
// @Description Update the editable fields of the connected account
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserUpdate true "Account information"
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Router /users/me [put]
func UpdateMe(c *gin.Context) {
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

	var input models.UserUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	user.Name = input.Name
	if err := db.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the account"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// @Summary Change the password
// @Description Change the connected account's password
// @Tags users
// @Accept json
// @Produce json
// @Param passwords body models.PasswordUpdate true "Current and new passwords"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Password updated"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Wrong current password"
// @Router /users/me/password [put]
func UpdatePassword(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.PasswordUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	if err := db.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong current password"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	if err := db.DB.Model(&user).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating the password"})
		return
	}

	utils.LogSuccessWithUser(userID, "Password updated in UpdatePassword")
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// @Summary Verify the company registration
// @Description Check the given CNPJ against the public registry and store it when active
// @Tags users
// @Accept json
// @Produce json
// @Param registration body models.RegistryCheckInput true "Company registration number"
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "valid: whether the registration is active"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 502 {object} map[string]string "error: Registry unavailable"
// @Router /users/me/registry-check [post]
func RegistryCheck(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.RegistryCheckInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	valid, err := utils.VerifyCnpj(input.Cnpj)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Registry lookup failed in RegistryCheck")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Registry unavailable"})
		return
	}

	if valid {
		if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
			Update("cnpj", input.Cnpj).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error storing the registration"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"valid": valid})
}

// @Summary List all accounts
// @Description Return every account (admin only)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.User
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Router /admin/users [get]
func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := db.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, users)
}
