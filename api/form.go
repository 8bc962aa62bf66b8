package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingform/internal/service/form"
	"bookingform/internal/session"
)

type FormHandler struct {
	service form.FormUseCase
}

type selectOptionRequest struct {
	Value string `json:"value"`
}

type addressRequest struct {
	Line   string `json:"line"`
	Manual bool   `json:"manual"`
}

type detailsRequest struct {
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
	CarSpaces int `json:"car_spaces"`
}

type pickSlotRequest struct {
	Day  string `json:"day"`
	Slot string `json:"slot"`
}

type navigateMonthRequest struct {
	Direction string `json:"direction"`
}

func NewFormHandler(service form.FormUseCase) *FormHandler {
	return &FormHandler{service: service}
}

func (h *FormHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:token", h.get)
	router.DELETE("/:token", h.cancel)
	router.PUT("/:token/booking-type", h.selectBookingType)
	router.PUT("/:token/access-method", h.selectAccessMethod)
	router.PUT("/:token/address", h.setAddress)
	router.PUT("/:token/details", h.setDetails)
	router.POST("/:token/times/slot", h.pickSlot)
	router.POST("/:token/times/confirm", h.confirmTimes)
	router.POST("/:token/times/edit", h.editTimes)
	router.POST("/:token/times/month", h.navigateMonth)
}

func (h *FormHandler) create(c *gin.Context) {
	view, err := h.service.CreateForm(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *FormHandler) get(c *gin.Context) {
	view, err := h.service.GetForm(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) cancel(c *gin.Context) {
	if err := h.service.CancelForm(c.Request.Context(), c.Param("token")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *FormHandler) selectBookingType(c *gin.Context) {
	var req selectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.SelectBookingType(c.Request.Context(), c.Param("token"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) selectAccessMethod(c *gin.Context) {
	var req selectOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.SelectAccessMethod(c.Request.Context(), c.Param("token"), req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) setAddress(c *gin.Context) {
	var req addressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.SetAddress(c.Request.Context(), c.Param("token"), form.AddressInput{
		Line:   req.Line,
		Manual: req.Manual,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) setDetails(c *gin.Context) {
	var req detailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.SetPropertyDetails(c.Request.Context(), c.Param("token"), form.DetailsInput{
		Bedrooms:  req.Bedrooms,
		Bathrooms: req.Bathrooms,
		CarSpaces: req.CarSpaces,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) pickSlot(c *gin.Context) {
	var req pickSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.PickTimeSlot(c.Request.Context(), c.Param("token"), req.Day, req.Slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) confirmTimes(c *gin.Context) {
	view, err := h.service.ConfirmTimes(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) editTimes(c *gin.Context) {
	view, err := h.service.EditTimes(c.Request.Context(), c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *FormHandler) navigateMonth(c *gin.Context) {
	var req navigateMonthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.service.NavigateMonth(c.Request.Context(), c.Param("token"), req.Direction)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func respondError(c *gin.Context, err error) {
	if errors.Is(err, session.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
