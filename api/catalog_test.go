package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookingform/internal/catalog"
)

func TestCatalogHandler_get(t *testing.T) {
	handler := NewCatalogHandler(catalog.Default())

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/catalog", nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response catalogResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response.BookingTypes, 4)
	assert.Len(t, response.AccessMethods, 3)
	assert.NotEmpty(t, response.Days)
	assert.NotEmpty(t, response.Slots)
	assert.Equal(t, "flexible", response.FlexibleSlot)
}
