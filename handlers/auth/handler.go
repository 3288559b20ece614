package auth

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/devalexsantos/advlink-sub000/db"
	"github.com/devalexsantos/advlink-sub000/models"
	"github.com/devalexsantos/advlink-sub000/utils"
	mailsmodels "github.com/devalexsantos/advlink-sub000/utils/mails-models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Create a new account
// @Description Register a professional account and send the confirmation email
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "Account information"
// @Success 201 {object} map[string]interface{} "message: User created successfully, email: user email"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 409 {object} map[string]interface{} "error: Email already exists"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /register [post]
func CreateUser(c *gin.Context) {
	var user models.User

	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The email cannot be empty",
		})
		return
	}

	if !utils.ValidateEmail(user.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	if user.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password cannot be empty",
		})
		return
	}

	if len(user.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password must contain at least 6 characters",
		})
		return
	}

	hasLower := strings.ContainsAny(user.Password, "abcdefghijklmnopqrstuvwxyz")
	hasUpper := strings.ContainsAny(user.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	hasDigit := strings.ContainsAny(user.Password, "0123456789")

	if !hasLower || !hasUpper || !hasDigit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password must contain at least one lowercase, one uppercase and one digit",
		})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", user.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "This email is already used",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Error when checking the email existence",
		})
		return
	}

	passwordHash, err := hashPassword(user.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	user.Password = passwordHash
	user.Name = ""
	user.Role = models.UserRole
	user.StripeCustomerId = ""
	user.SubscriptionActive = false
	user.Cnpj = ""
	user.ConfirmationCode = uuid.New().String()
	user.EmailVerifiedAt = sql.NullTime{Valid: false}

	result := db.DB.Create(&user)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": result.Error.Error(),
		})
		return
	}

	// every account starts with an empty, unpublished page
	profile := models.Profile{
		UserID: user.ID,
		Slug:   availableSlug(user.Email),
	}
	if err := db.DB.Create(&profile).Error; err != nil {
		utils.LogErrorWithUser(user.ID, err, "Error creating the initial profile in CreateUser")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating the initial profile"})
		return
	}

	mailsmodels.ConfirmEmail(user.Email, user.ConfirmationCode)

	utils.LogSuccessWithUser(user.ID, "User created successfully in CreateUser")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
	})
}

// availableSlug derives a slug from the email local part, suffixing it when
// another profile already claimed it.
func availableSlug(email string) string {
	base := utils.Slugify(strings.Split(email, "@")[0])
	if base == "" {
		base = "profile"
	}

	slug := base
	var existing models.Profile
	if err := db.DB.Where("slug = ?", slug).First(&existing).Error; err == nil {
		slug = base + "-" + uuid.New().String()[:8]
	}
	return slug
}

// @Summary Account login
// @Description Log in with credentials, returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserCreate true "Account credentials"
// @Success 200 {object} map[string]interface{} "token: JWT"
// @Failure 400 {object} map[string]interface{} "error: Invalid input"
// @Failure 401 {object} map[string]interface{} "error: Wrong credentials or email not verified"
// @Failure 422 {object} map[string]interface{} "error: JWT not generated"
// @Router /login [post]
func Login(c *gin.Context) {
	var inputLogin models.UserCreate

	if err := c.ShouldBindJSON(&inputLogin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid input: " + err.Error(),
		})
		return
	}

	if inputLogin.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The email cannot be empty",
		})
		return
	}

	if !utils.ValidateEmail(inputLogin.Email) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid email format",
		})
		return
	}

	if inputLogin.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "The password cannot be empty",
		})
		return
	}

	var user models.User
	result := db.DB.Where("email = ?", inputLogin.Email).First(&user)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Database error: " + result.Error.Error(),
			})
		}
		return
	}

	if !samePassword(inputLogin.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Wrong credentials",
		})
		return
	}

	if !user.EmailVerifiedAt.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Email not verified",
		})
		return
	}

	token, err := utils.GenerateJWT(user, 72)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error generating the token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
	})
}

// @Summary Confirm an email address
// @Description Validate the confirmation code sent by email
// @Tags auth
// @Produce json
// @Param code path string true "Confirmation code"
// @Success 200 {object} map[string]interface{} "message: Email confirmed"
// @Failure 404 {object} map[string]interface{} "error: Invalid confirmation code"
// @Failure 500 {object} map[string]interface{} "error: Error message"
// @Router /valid-email/{code} [get]
func ValidEmail(c *gin.Context) {
	code := c.Param("code")

	var user models.User
	if err := db.DB.Where("confirmation_code = ?", code).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid confirmation code"})
		return
	}

	updates := map[string]interface{}{
		"email_verified_at": sql.NullTime{Time: time.Now(), Valid: true},
		"confirmation_code": "",
	}
	if err := db.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error confirming the email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed"})
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword))
	return err == nil
}
