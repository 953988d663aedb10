package specializations

import (
	"net/http"

	"github.com/Jaydip614/medisync/db"
	"github.com/Jaydip614/medisync/models"
	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// @Summary List specializations
// @Description All doctor specializations, alphabetically
// @Tags specializations
// @Produce json
// @Success 200 {array} models.Specialization "List of specializations"
// @Failure 500 {object} map[string]string "error: Error retrieving specializations"
// @Router /specializations [get]
func GetSpecializations(c *gin.Context) {
	var specializations []models.Specialization

	if err := db.DB.Order("name ASC").Find(&specializations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving specializations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"specializations": specializations})
}

// @Summary Add a specialization
// @Description Create a new specialization (admin only)
// @Tags specializations
// @Accept json
// @Produce json
// @Param specialization body models.SpecializationCreate true "Specialization information"
// @Security BearerAuth
// @Success 201 {object} models.Specialization "Created specialization"
// @Failure 400 {object} map[string]string "error: Invalid request data"
// @Failure 403 {object} map[string]string "error: Admin role required"
// @Failure 500 {object} map[string]string "error: Error creating specialization"
// @Router /specializations [post]
func CreateSpecialization(c *gin.Context) {
	var input models.SpecializationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	specialization := models.Specialization{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := db.DB.Create(&specialization).Error; err != nil {
		utils.LogError(err, "Error creating specialization in CreateSpecialization")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating specialization: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, specialization)
}
