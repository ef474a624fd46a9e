package handler

import (
	"errors"
	"net/http"
	"strconv"

	"conference-ticketing/internal/model"
	apperrors "conference-ticketing/pkg/app_errors"
	"conference-ticketing/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindQuery(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindQuery(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// ParamID 解析路徑上的整數 id，失敗時回應 400
func ParamID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// ConferenceUserURI /conferences/:id/users/:user_id
type ConferenceUserURI struct {
	ConferenceID int `uri:"id" binding:"required,gt=0"`
	UserID       int `uri:"user_id" binding:"required,gt=0"`
}

// handleError 將 service 錯誤對應到 HTTP 狀態碼
func handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))

	var verrs model.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		log.Info("Validation failed")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": verrs.Error(), "details": verrs})
	case errors.Is(err, apperrors.ErrTicketNotFound):
		log.Warn("Ticket not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
	case errors.Is(err, apperrors.ErrConferenceNotFound):
		log.Warn("Conference not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Conference not found"})
	case errors.Is(err, apperrors.ErrUserNotFound):
		log.Warn("User not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, apperrors.ErrPurchaseInProgress):
		log.Warn("Purchase in progress")
		c.JSON(http.StatusConflict, gin.H{"error": "Another purchase for this user is in progress"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
