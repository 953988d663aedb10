package auth

import (
	"errors"
	"net/http"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// @Summary Register a new user
// @Description Create an account. Every account starts with the unlisted role until the profile is completed.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserRegister true "User information"
// @Success 201 {object} map[string]interface{} "message: User created successfully, token: session token"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 409 {object} map[string]string "error: Email already exists"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var input models.UserRegister

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var existingUser models.User
	if err := db.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "This email is already used"})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error when checking the email existence"})
		return
	}

	passwordHash, err := hashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error hashing the password"})
		return
	}

	user := models.User{
		AuthID:    "usr_" + uuid.NewString(),
		Email:     input.Email,
		Password:  passwordHash,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Role:      models.UnlistedRole,
	}

	if result := db.DB.Create(&user); result.Error != nil {
		utils.LogError(result.Error, "Error creating user in Register")
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}

	token, err := utils.GenerateJWT(user, 168)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error creating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User created successfully in Register")
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"email":   user.Email,
		"token":   token,
	})
}

// @Summary User login
// @Description Log in with credentials, returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLogin true "Credentials"
// @Success 200 {object} map[string]string "token: session token"
// @Failure 400 {object} map[string]string "error: Invalid input"
// @Failure 401 {object} map[string]string "error: Wrong credentials"
// @Failure 422 {object} map[string]string "error: JWT not generated"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var input models.UserLogin

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	var user models.User
	result := db.DB.Where("email = ?", input.Email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong credentials"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + result.Error.Error()})
		}
		return
	}

	if !samePassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong credentials"})
		return
	}

	token, err := utils.GenerateJWT(user, 168)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Error creating the token"})
		return
	}

	utils.LogSuccessWithUser(user.ID, "User logged in")
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

func samePassword(formPassword string, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(formPassword)) == nil
}
