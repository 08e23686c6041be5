package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguenfoude/bs/internal/core/domain"
	"go.uber.org/zap"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:   http.StatusInternalServerError,
	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrDuplicateOrder:      http.StatusConflict,
	domain.ErrAllChannelsDisabled: http.StatusInternalServerError,
	domain.ErrProcessingFailed:    http.StatusInternalServerError,
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

type submitResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	ClientRequestID string `json:"clientRequestId"`
	SheetSaved      bool   `json:"sheetSaved"`
	EmailSent       bool   `json:"emailSent"`
}

type errorResponse struct {
	Success   bool                `json:"success"`
	Error     string              `json:"error"`
	Details   []domain.FieldError `json:"details,omitempty"`
	Duplicate bool                `json:"duplicate,omitempty"`
}

// handleValidationError sends a 400 with the first violation as the
// top-level error and the full per-field list in details.
func (h *Handler) handleValidationError(ctx *gin.Context, verr *domain.ValidationError) {
	ctx.JSON(http.StatusBadRequest, errorResponse{
		Error:   verr.First(),
		Details: verr.Details,
	})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
		h.logger.Error("error processing request", zap.Error(err))
	}

	resp := errorResponse{Error: domain.MsgOrderFailed}
	if err == domain.ErrDuplicateOrder {
		resp.Error = domain.MsgOrderDuplicate
		resp.Duplicate = true
	}
	ctx.JSON(statusCode, resp)
}
