package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/haiminhdev/meeting-brief/errors"
	"github.com/haiminhdev/meeting-brief/internal/adapter/dto/webhook"
	"github.com/haiminhdev/meeting-brief/internal/usecase/meeting"
	pkgai "github.com/haiminhdev/meeting-brief/pkg/ai"
)

// WebhookHandler handles incoming webhooks from the transcription provider
type WebhookHandler struct {
	svc    meeting.Service
	secret string
	logger *zap.Logger
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(svc meeting.Service, secret string, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{svc: svc, secret: secret, logger: logger}
}

// HandleFirefliesWebhook receives transcription-ready notifications
// @Summary      Fireflies Webhook
// @Description  Triggered by the transcription provider when a meeting transcript is ready
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  webhook.AckResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      401  {object}  map[string]interface{}
// @Router       /webhooks/fireflies [post]
func (h *WebhookHandler) HandleFirefliesWebhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	if !h.verifyDelivery(c, body) {
		if h.logger != nil {
			h.logger.Warn("unauthorized webhook attempt: invalid secret")
		}
		return HandleError(h.logger, c, errors.ErrInvalidWebhookSecret())
	}

	var event webhook.FirefliesEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&event); err != nil {
		return HandleError(h.logger, c, errors.ErrMissingMeetingID())
	}

	result, err := h.svc.ProcessWebhook(c.Request().Context(), meeting.WebhookEvent{
		MeetingID: event.MeetingID,
		EventType: event.EventType,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return c.JSON(http.StatusOK, webhook.AckResponse{
		Status:       result.Status,
		Message:      result.Message,
		AsanaTaskGID: result.TaskGID,
	})
}

// verifyDelivery checks the shared webhook secret. Fireflies echoes the
// secret back in a header; an HMAC hex signature of the body is accepted
// too. When no secret is configured, verification is skipped with a
// warning.
func (h *WebhookHandler) verifyDelivery(c echo.Context, body []byte) bool {
	if h.secret == "" {
		if h.logger != nil {
			h.logger.Warn("webhook secret not configured, skipping verification")
		}
		return true
	}

	if pkgai.VerifySecret(h.secret, c.Request().Header.Get("fireflies-webhook-secret")) {
		return true
	}
	return pkgai.VerifyHMAC(h.secret, body, c.Request().Header.Get("x-fireflies-signature"))
}
