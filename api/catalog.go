package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingform/internal/catalog"
	"bookingform/internal/domain"
)

type CatalogHandler struct {
	catalog *catalog.Catalog
}

type catalogResponse struct {
	BookingTypes  []domain.Option      `json:"booking_types"`
	AccessMethods []domain.Option      `json:"access_methods"`
	Months        []string             `json:"months"`
	Days          []domain.CalendarDay `json:"days"`
	Slots         []string             `json:"slots"`
	FlexibleSlot  string               `json:"flexible_slot"`
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.get)
}

func (h *CatalogHandler) get(c *gin.Context) {
	c.JSON(http.StatusOK, catalogResponse{
		BookingTypes:  h.catalog.BookingTypes,
		AccessMethods: h.catalog.AccessMethods,
		Months:        h.catalog.Months,
		Days:          h.catalog.Days,
		Slots:         h.catalog.Slots,
		FlexibleSlot:  domain.FlexibleSlot,
	})
}
