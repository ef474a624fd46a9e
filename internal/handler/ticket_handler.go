package handler

import (
	"net/http"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service service.TicketService
}

func NewTicketHandler(service service.TicketService) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("conferences/:id/tickets", h.ListByConference)
		router.POST("conferences/:id/tickets", h.Create)
		router.GET("tickets/:id", h.Get)
		router.PUT("tickets/:id", h.Update)
		router.DELETE("tickets/:id", h.Delete)
		router.GET("tickets/:id/stats", h.Stats)
		router.GET("tickets/:id/buyers", h.Buyers)
		router.GET("tickets/:id/users/:user_id", h.UserStatus)
	}
}

// CreateTicketRequest 建立票券請求，欄位驗證交給 model
type CreateTicketRequest struct {
	Title         string  `json:"title"`
	Description   *string `json:"description"`
	PriceCents    int64   `json:"price_cents"`
	PriceCurrency string  `json:"price_currency"`
}

// UpdateTicketRequest 更新票券請求
type UpdateTicketRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	PriceCents    *int64  `json:"price_cents"`
	PriceCurrency *string `json:"price_currency"`
}

func (h *TicketHandler) ListByConference(c *gin.Context) {
	conferenceID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	tickets, err := h.service.ListByConference(c, conferenceID)
	if err != nil {
		handleError(c, err, "ListByConference")
		return
	}

	resp := make([]model.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, model.NewTicketResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TicketHandler) Get(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	ticket, err := h.service.Get(c, id)
	if err != nil {
		handleError(c, err, "Get")
		return
	}
	c.JSON(http.StatusOK, model.NewTicketResponse(ticket))
}

func (h *TicketHandler) Create(c *gin.Context) {
	conferenceID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req CreateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	ticket := &model.Ticket{
		ConferenceID:  conferenceID,
		Title:         req.Title,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		PriceCurrency: req.PriceCurrency,
	}
	created, err := h.service.Create(c, ticket)
	if err != nil {
		handleError(c, err, "Create")
		return
	}
	c.JSON(http.StatusCreated, model.NewTicketResponse(created))
}

func (h *TicketHandler) Update(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req UpdateTicketRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	params := model.UpdateTicketParams{
		Title:         req.Title,
		Description:   req.Description,
		PriceCents:    req.PriceCents,
		PriceCurrency: req.PriceCurrency,
	}
	if params.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one of title, description, price_cents or price_currency is required"})
		return
	}
	updated, err := h.service.Update(c, id, params)
	if err != nil {
		handleError(c, err, "Update")
		return
	}
	c.JSON(http.StatusOK, model.NewTicketResponse(updated))
}

func (h *TicketHandler) Delete(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c, id); err != nil {
		handleError(c, err, "Delete")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TicketHandler) Stats(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	stats, err := h.service.Stats(c, id)
	if err != nil {
		handleError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *TicketHandler) Buyers(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	buyers, err := h.service.Buyers(c, id)
	if err != nil {
		handleError(c, err, "Buyers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ticket_id": id, "user_ids": buyers})
}

func (h *TicketHandler) UserStatus(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	userID, ok := ParamID(c, "user_id")
	if !ok {
		return
	}
	status, err := h.service.UserStatus(c, id, userID)
	if err != nil {
		handleError(c, err, "UserStatus")
		return
	}
	c.JSON(http.StatusOK, status)
}
