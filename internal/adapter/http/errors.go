package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"reachpay/internal/core/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuthorization:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindState, domain.KindData:
		return http.StatusConflict
	case domain.KindTransfer:
		return http.StatusPaymentRequired
	case domain.KindArithmetic:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": code, "message": msg}. Errors outside
// the domain taxonomy are logged and hidden behind a generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.logger.Error(op+" error",
			slog.Any("error", err),
			slog.String("request_id", requestID(r)),
		)
		h.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal", Message: "internal error"})
		return
	}
	status := statusFor(de.Kind)
	if status == http.StatusInternalServerError {
		h.logger.Error(op+" error", slog.Any("error", err), slog.String("request_id", requestID(r)))
	}
	h.writeJSON(w, status, errorResponse{Error: de.Code, Message: de.Message})
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "BadRequest", Message: msg})
}

func requestID(r *http.Request) string {
	return middleware.GetReqID(r.Context())
}
