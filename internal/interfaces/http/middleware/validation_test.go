package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type thresholdPayload struct {
	StoreID     string  `json:"store_id" binding:"required,uuid"`
	MinQuantity float64 `json:"min_quantity" binding:"gte=0"`
}

func TestHandleValidationErrorFieldNames(t *testing.T) {
	SetupValidator()

	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req thresholdPayload
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	body, _ := json.Marshal(map[string]any{"min_quantity": -1})
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

	details, ok := resp.Error.Details.([]any)
	require.True(t, ok)
	require.Len(t, details, 2)

	fields := make(map[string]string)
	for _, d := range details {
		entry := d.(map[string]any)
		fields[entry["field"].(string)] = entry["message"].(string)
	}
	// JSON tag names, not struct field names
	assert.Equal(t, "This field is required", fields["store_id"])
	assert.Contains(t, fields["min_quantity"], "greater than or equal to")
}

func TestFormatValidationErrorsNonValidatorError(t *testing.T) {
	resp := FormatValidationErrors(assert.AnError, "req-1")

	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.Nil(t, resp.Error.Details)
}
