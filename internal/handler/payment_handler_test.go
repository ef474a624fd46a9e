package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"conference-ticketing/internal/handler"
	"conference-ticketing/internal/model"
	"conference-ticketing/internal/queue/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupPaymentTestRouter(q *mocks.MockPaymentQueue) *gin.Engine {
	router := gin.New()
	handler.NewPaymentHandler(q).RegisterRoutes(router)
	return router
}

func TestPaymentHandler_Complete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		q := mocks.NewMockPaymentQueue(t)
		router := setupPaymentTestRouter(q)

		q.EXPECT().PublishPaymentCompleted(mock.Anything, mock.MatchedBy(func(e *model.PaymentCompleted) bool {
			return e.ConferenceID == 1 && e.UserID == 2 && e.PaymentID == 44 && !e.CompletedAt.IsZero()
		})).Return(nil).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/conferences/1/payments",
			map[string]int{"user_id": 2, "payment_id": 44}))

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, float64(44), decodeBody(t, w)["payment_id"])
	})

	t.Run("Failed - MissingPaymentID", func(t *testing.T) {
		q := mocks.NewMockPaymentQueue(t)
		router := setupPaymentTestRouter(q)

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/conferences/1/payments",
			map[string]int{"user_id": 2}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		q.AssertNotCalled(t, "PublishPaymentCompleted")
	})

	t.Run("Failed - PublishError", func(t *testing.T) {
		q := mocks.NewMockPaymentQueue(t)
		router := setupPaymentTestRouter(q)

		q.EXPECT().PublishPaymentCompleted(mock.Anything, mock.Anything).Return(errors.New("xadd: redis down")).Once()

		w := serve(router, createJSONHTTPRequest("POST", "/api/v1/conferences/1/payments",
			map[string]int{"user_id": 2, "payment_id": 44}))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPaymentHandler_Options(t *testing.T) {
	router := setupPaymentTestRouter(mocks.NewMockPaymentQueue(t))

	w := serve(router, httptest.NewRequest("GET", "/api/v1/payments/options", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	months := body["months"].([]interface{})
	years := body["years"].([]interface{})
	assert.Len(t, months, 12)
	assert.Equal(t, "1 - January", months[0].(map[string]interface{})["label"])
	assert.Len(t, years, 16)
}
