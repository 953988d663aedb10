package users

import (
	"net/http"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Get the current user
// @Description Return the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 404 {object} map[string]string "error: User not found"
// @Router /users/me [get]
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var user models.User
	if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// @Summary Update the current user's profile
// @Description Role onboarding and profile edits (dob, gender, specialization for doctors)
// @Tags users
// @Accept json
// @Produce json
// @Param profile body models.ProfileUpdate true "Profile information"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Profile updated"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Error updating profile"
// @Router /users/me [put]
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input models.ProfileUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"role":           input.Role,
		"dob":            input.Dob,
		"gender":         input.Gender,
		"blood_type":     input.BloodType,
		"insurance_info": input.InsuranceInfo,
	}
	if input.SpecializationID != nil {
		updates["specialization_id"] = *input.SpecializationID
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		utils.LogErrorWithUser(userID, err, "Error updating profile in UpdateProfile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Profile updated")
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

// @Summary List doctors
// @Description All users with the doctor role, optionally filtered by specialization
// @Tags users
// @Produce json
// @Param specializationId query string false "Specialization id"
// @Security BearerAuth
// @Success 200 {array} models.User "List of doctors"
// @Failure 500 {object} map[string]string "error: Error retrieving doctors"
// @Router /doctors [get]
func GetDoctors(c *gin.Context) {
	query := db.DB.Where("role = ?", models.DoctorRole)

	if specializationID := c.Query("specializationId"); specializationID != "" {
		query = query.Where("specialization_id = ?", specializationID)
	}

	var doctors []models.User
	if err := query.Order("first_name ASC").Find(&doctors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving doctors: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}
