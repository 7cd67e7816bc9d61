package handlers

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"obleafusion/internal/infrastructure/i18n"
	"obleafusion/internal/interfaces/dto"
	"obleafusion/internal/shared/constants"
	"obleafusion/internal/shared/errors"
	"obleafusion/internal/shared/logger"
	"obleafusion/internal/shared/utils"
)

type FormHandler struct {
	service formService
	logger  logger.Interface
}

func NewFormHandler(service formService, logger logger.Interface) *FormHandler {
	return &FormHandler{
		service: service,
		logger:  logger,
	}
}

// SubmitBooking handles POST /email/booking.
func (h *FormHandler) SubmitBooking(c *gin.Context) {
	var req dto.BookingRequest
	if !h.bind(c, &req, "booking") {
		return
	}
	lang := h.setLang(c, req.Language)

	delivered, err := h.service.SendBooking(c.Request.Context(), req.ToApplicationDTO())
	if err != nil {
		h.handleError(c, lang, "booking", err)
		return
	}

	if !delivered {
		utils.WarningResponse(c, http.StatusOK, i18n.MsgBookingReceived(lang), i18n.WarningNotificationUndelivered)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, i18n.MsgBookingSent(lang))
}

// SubmitContact handles POST /email/contact.
func (h *FormHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if !h.bind(c, &req, "contact") {
		return
	}
	lang := h.setLang(c, req.Language)

	delivered, err := h.service.SendContact(c.Request.Context(), req.ToApplicationDTO())
	if err != nil {
		h.handleError(c, lang, "contact", err)
		return
	}

	if !delivered {
		utils.WarningResponse(c, http.StatusOK, i18n.MsgContactReceived(lang), i18n.WarningNotificationUndelivered)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, i18n.MsgContactSent(lang))
}

// bind decodes the JSON body into req. An empty body decodes as an empty
// form so that it is rejected by validation instead of as malformed.
func (h *FormHandler) bind(c *gin.Context, req any, kind string) bool {
	err := c.ShouldBindBodyWith(req, binding.JSON)
	if err == nil || stderrors.Is(err, io.EOF) {
		return true
	}

	lang := h.setLang(c, languageFromBody(c))
	h.logger.Warnw("invalid request body",
		"kind", kind,
		"error", err,
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, i18n.MsgUnexpectedError(lang), err.Error())
	return false
}

func (h *FormHandler) handleError(c *gin.Context, lang i18n.Lang, kind string, err error) {
	if errors.IsValidationError(err) {
		utils.ErrorResponse(c, http.StatusBadRequest, i18n.MsgMissingRequiredFields(lang))
		return
	}

	h.logger.Errorw("failed to process form submission",
		"kind", kind,
		"error", err,
	)
	utils.ErrorResponse(c, http.StatusInternalServerError, i18n.MsgUnexpectedError(lang), err.Error())
}

func (h *FormHandler) setLang(c *gin.Context, raw string) i18n.Lang {
	lang := i18n.ParseLang(raw)
	c.Set(constants.ContextKeyLang, lang)
	return lang
}

// languageFromBody recovers the language of a body whose other fields failed
// to decode. It returns "" when the body is not a JSON object.
func languageFromBody(c *gin.Context) string {
	raw, ok := c.Get(gin.BodyBytesKey)
	if !ok {
		return ""
	}
	body, ok := raw.([]byte)
	if !ok {
		return ""
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}
	var lang string
	if err := json.Unmarshal(probe["language"], &lang); err != nil {
		return ""
	}
	return lang
}
