package utils

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var cld *cloudinary.Cloudinary

// InitCloudinary initializes the object storage connection
func InitCloudinary() error {
	var err error

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("the Cloudinary environment variables are not defined")
	}

	cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return fmt.Errorf("error initializing Cloudinary: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err = cld.Admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("error verifying the Cloudinary connection: %v", err)
	}

	LogSuccess("Cloudinary initialized and connection verified")
	return nil
}

func boolPointer(b bool) *bool {
	return &b
}

// Attachments shared in chat: images plus the usual document formats.
func isValidAttachmentType(filename string) bool {
	validExtensions := []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg", ".pdf", ".doc", ".docx", ".txt"}
	lowerFilename := strings.ToLower(filename)

	for _, ext := range validExtensions {
		if strings.HasSuffix(lowerFilename, ext) {
			return true
		}
	}
	return false
}

// UploadChatAttachment uploads a chat file to Cloudinary and returns its
// public URL.
func UploadChatAttachment(file *multipart.FileHeader) (string, error) {
	if !isValidAttachmentType(file.Filename) {
		return "", fmt.Errorf("unsupported file format. Use JPG, PNG, GIF, WEBP, BMP, SVG, PDF, DOC, DOCX or TXT")
	}

	// 10MB max, aligned with the client-side limit
	if file.Size > 10*1024*1024 {
		return "", fmt.Errorf("file too large. Maximum 10MB allowed")
	}

	if cld == nil {
		if err := InitCloudinary(); err != nil {
			LogError(err, "Cloudinary initialization failed during upload")
			return "", err
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening the file: %v", err)
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	publicID := fmt.Sprintf("chat_%d", time.Now().Unix())

	uploadParams := uploader.UploadParams{
		Folder:         "chat_uploads",
		PublicID:       publicID,
		UseFilename:    boolPointer(true),
		UniqueFilename: boolPointer(true),
		Overwrite:      boolPointer(false),
		ResourceType:   "auto",
	}

	uploadResult, err := cld.Upload.Upload(ctx, src, uploadParams)
	if err != nil {
		LogError(err, "Error uploading to Cloudinary")
		return "", fmt.Errorf("error uploading to Cloudinary: %v", err)
	}

	if uploadResult.SecureURL == "" {
		if uploadResult.PublicID != "" {
			cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
			return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/%s", cloudName, uploadResult.PublicID), nil
		}
		return "", fmt.Errorf("empty secure URL in the Cloudinary response")
	}

	return uploadResult.SecureURL, nil
}
