package handler

import (
	"net/http"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type ConferenceHandler struct {
	service service.ConferenceService
}

func NewConferenceHandler(service service.ConferenceService) *ConferenceHandler {
	return &ConferenceHandler{service: service}
}

func (h *ConferenceHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("conferences", h.List)
		router.POST("conferences", h.Create)
		router.GET("conferences/:id", h.Get)
	}
}

type CreateConferenceRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *ConferenceHandler) List(c *gin.Context) {
	conferences, err := h.service.List(c)
	if err != nil {
		handleError(c, err, "List")
		return
	}
	c.JSON(http.StatusOK, conferences)
}

func (h *ConferenceHandler) Get(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	conference, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, conference)
}

func (h *ConferenceHandler) Create(c *gin.Context) {
	var req CreateConferenceRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	created, err := h.service.Create(c, &model.Conference{Name: req.Name})
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, created)
}
