package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"conference-ticketing/internal/model"
	"conference-ticketing/internal/service"

	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	service       service.PurchaseService
	ticketService service.TicketService
}

func NewPurchaseHandler(service service.PurchaseService, ticketService service.TicketService) *PurchaseHandler {
	return &PurchaseHandler{service: service, ticketService: ticketService}
}

func (h *PurchaseHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("conferences/:id/purchases", h.Purchase)
		router.GET("conferences/:id/users/:user_id/purchases", h.ListByUser)
		router.GET("conferences/:id/users/:user_id/total", h.Total)
	}
}

// PurchaseRequest 購票請求，quantities 為票券 id → 數量
type PurchaseRequest struct {
	UserID     int                        `json:"user_id" binding:"required,gt=0"`
	Quantities map[string]json.RawMessage `json:"quantities" binding:"required"`
}

// TotalQuery ?paid=true|false，預設未付款
type TotalQuery struct {
	Paid *bool `form:"paid"`
}

// rawQuantities 數量可為 JSON 數字或字串，原樣交給 service 解析
func rawQuantities(in map[string]json.RawMessage) map[string]string {
	out := make(map[string]string, len(in))
	for key, raw := range in {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			out[key] = s
			continue
		}
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			out[key] = ""
			continue
		}
		out[key] = string(raw)
	}
	return out
}

func (h *PurchaseHandler) Purchase(c *gin.Context) {
	conferenceID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	var req PurchaseRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	messages, err := h.service.Purchase(c, conferenceID, req.UserID, rawQuantities(req.Quantities))
	if err != nil {
		handleError(c, err, "Purchase")
		return
	}
	if messages != "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": messages})
		return
	}

	purchases, err := h.service.ListByUser(c, conferenceID, req.UserID)
	if err != nil {
		handleError(c, err, "Purchase")
		return
	}
	c.JSON(http.StatusCreated, purchaseResponses(purchases))
}

func (h *PurchaseHandler) ListByUser(c *gin.Context) {
	var uri ConferenceUserURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	purchases, err := h.service.ListByUser(c, uri.ConferenceID, uri.UserID)
	if err != nil {
		handleError(c, err, "ListByUser")
		return
	}
	c.JSON(http.StatusOK, purchaseResponses(purchases))
}

func (h *PurchaseHandler) Total(c *gin.Context) {
	var uri ConferenceUserURI
	if err := BindUri(c, &uri); err != nil {
		return
	}
	var query TotalQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	paid := query.Paid != nil && *query.Paid

	total, err := h.ticketService.TotalPriceAcrossTickets(c, uri.ConferenceID, uri.UserID, paid)
	if err != nil {
		handleError(c, err, "Total")
		return
	}
	c.JSON(http.StatusOK, gin.H{"paid": paid, "total": model.NewTotalMoney(total)})
}

func purchaseResponses(purchases []*model.TicketPurchase) []model.TicketPurchaseResponse {
	resp := make([]model.TicketPurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		resp = append(resp, model.NewTicketPurchaseResponse(p))
	}
	return resp
}
