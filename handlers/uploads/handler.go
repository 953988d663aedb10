package uploads

import (
	"net/http"

	"github.com/Jaydip614/medisync/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Upload a file
// @Description Upload a chat attachment to object storage and return its public URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload (max 10MB)"
// @Security BearerAuth
// @Success 200 {object} map[string]string "fileUrl: public URL"
// @Failure 400 {object} map[string]string "error: No file provided or unsupported format"
// @Failure 401 {object} map[string]string "error: Unauthorized"
// @Failure 500 {object} map[string]string "error: Failed to upload file"
// @Router /uploads [post]
func UploadFile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	fileURL, err := utils.UploadChatAttachment(file)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error uploading file in UploadFile")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload file: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "File uploaded")
	c.JSON(http.StatusOK, gin.H{"fileUrl": fileURL})
}
