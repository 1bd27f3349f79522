package server

import (
	"encoding/base64"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"kbjutracker/internal/vision"
)

const defaultMimeType = "image/jpeg"

type analyzeRequest struct {
	// Image is a pointer so a missing key and an empty string are distinct.
	Image    *string `json:"image"`
	MimeType string  `json:"mime_type"`
}

// handleAnalyze accepts a food photo as a multipart upload or a base64 JSON
// body, forwards it to the vision model and returns the nutrition object the
// model produced.
func (s *Server) handleAnalyze(c *gin.Context) {
	imageBase64, mimeType, ok := extractImage(c)
	if !ok {
		// extractImage already wrote the error response
		return
	}

	result, err := s.model.Analyze(c.Request.Context(), imageBase64, mimeType)
	if err != nil {
		s.writeAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// extractImage pulls base64 image data and a MIME type out of the request.
// A multipart file field named "image" wins over a JSON body.
func extractImage(c *gin.Context) (imageBase64, mimeType string, ok bool) {
	if file, err := c.FormFile("image"); err == nil {
		if file.Filename == "" {
			apiError(c, http.StatusBadRequest, "No file selected",
				"Please choose an image to analyze")
			return "", "", false
		}

		mimeType = file.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = defaultMimeType
		}

		f, err := file.Open()
		if err != nil {
			apiError(c, http.StatusBadRequest, "Unreadable upload",
				"Could not read the uploaded image")
			return "", "", false
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			apiError(c, http.StatusBadRequest, "Unreadable upload",
				"Could not read the uploaded image")
			return "", "", false
		}

		return base64.StdEncoding.EncodeToString(data), mimeType, true
	}

	if c.ContentType() == "application/json" {
		var req analyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apiError(c, http.StatusBadRequest, "Invalid request format",
				"Send an image via form-data or JSON with base64 data")
			return "", "", false
		}
		if req.Image == nil {
			apiError(c, http.StatusBadRequest, "No image provided",
				"Send the image in the 'image' field")
			return "", "", false
		}

		imageBase64 = *req.Image
		mimeType = req.MimeType
		if mimeType == "" {
			mimeType = defaultMimeType
		}

		// A data URI carries its own MIME type and overrides mime_type
		if strings.HasPrefix(imageBase64, "data:") {
			header, payload, found := strings.Cut(imageBase64, ",")
			if !found {
				apiError(c, http.StatusBadRequest, "Invalid image data",
					"The data URI is missing its base64 payload")
				return "", "", false
			}
			meta := strings.TrimPrefix(header, "data:")
			if m, _, _ := strings.Cut(meta, ";"); m != "" {
				mimeType = m
			}
			imageBase64 = payload
		}

		return imageBase64, mimeType, true
	}

	apiError(c, http.StatusBadRequest, "Invalid request format",
		"Send an image via form-data or JSON with base64 data")
	return "", "", false
}

func (s *Server) writeAnalyzeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, vision.ErrNotConfigured):
		apiError(c, http.StatusInternalServerError,
			"API credential is not configured", err.Error())
	case errors.Is(err, vision.ErrBadReply):
		apiError(c, http.StatusInternalServerError,
			"Failed to process model reply",
			"Could not parse the AI response. Try a different photo.")
	default:
		log.Printf("Error analyzing image: %v", err)
		apiError(c, http.StatusInternalServerError,
			"Internal server error", err.Error())
	}
}

// apiError writes the error envelope shared by every failure path.
func apiError(c *gin.Context, status int, summary, message string) {
	c.JSON(status, gin.H{
		"error":   summary,
		"message": message,
	})
}
