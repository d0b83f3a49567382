package handler

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

// MaxImageBytes bounds accepted uploads. Classifier inputs are resized
// to 224x224 anyway, so anything larger than this is abuse.
const MaxImageBytes = 10 << 20

// ReadImageFile extracts the uploaded image bytes from a multipart form
// field. Returns an error for a missing field or an oversized file.
func ReadImageFile(c *gin.Context, field string) ([]byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s field: %w", field, err)
	}
	if fileHeader.Size > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("uploaded %s is empty", field)
	}
	return data, nil
}
