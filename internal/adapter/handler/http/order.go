package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguenfoude/bs/internal/adapter/metrics"
	"github.com/oguenfoude/bs/internal/core/domain"
	"github.com/oguenfoude/bs/internal/core/port"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.Service
	metrics *metrics.Registry
}

func NewOrderHandler(service port.Service, m *metrics.Registry, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		metrics: m,
	}, nil
}

// SubmitOrder handles POST /api/submit-order.
func (oh *OrderHandler) SubmitOrder(ctx *gin.Context) {
	var sub domain.OrderSubmission
	if err := ctx.ShouldBindBodyWithJSON(&sub); err != nil {
		oh.metrics.Submissions.WithLabelValues("rejected").Inc()
		ctx.JSON(http.StatusBadRequest, errorResponse{Error: domain.MsgBadRequest})
		return
	}

	receipt, err := oh.service.SubmitOrder(ctx, sub)
	if err != nil {
		var verr *domain.ValidationError
		switch {
		case errors.As(err, &verr):
			oh.metrics.Submissions.WithLabelValues("rejected").Inc()
			oh.handleValidationError(ctx, verr)
		case errors.Is(err, domain.ErrDuplicateOrder):
			oh.metrics.Submissions.WithLabelValues("duplicate").Inc()
			oh.handleError(ctx, err)
		default:
			oh.metrics.Submissions.WithLabelValues("failed").Inc()
			oh.handleError(ctx, err)
		}
		return
	}

	oh.metrics.Submissions.WithLabelValues("accepted").Inc()
	ctx.JSON(http.StatusOK, submitResponse{
		Success:         true,
		Message:         domain.MsgOrderAccepted,
		ClientRequestID: receipt.ClientRequestID,
		SheetSaved:      receipt.SheetSaved,
		EmailSent:       receipt.EmailSent,
	})
}
