package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/handler/dto"
	"github.com/Flapjack766/vetap-website-sub003/internal/middleware"
	"github.com/Flapjack766/vetap-website-sub003/internal/qr"
	"github.com/wb-go/wbf/ginext"
)

type CheckInSvc interface {
	CheckIn(ctx context.Context, in domain.CheckInInput) (*domain.CheckInOutcome, error)
	VerifyPayload(ctx context.Context, raw, partnerID string) (*domain.Pass, error)
	Revoke(ctx context.Context, passID string) (*domain.Pass, error)
	ListScanLogs(ctx context.Context, eventID string, limit int) ([]*domain.ScanLog, error)
}

type IssuanceSvc interface {
	IssuePass(ctx context.Context, input domain.IssuePassInput) (*domain.Pass, error)
	GenerateGateAccessCode(ctx context.Context, eventID string) (string, error)
}

type GateAuthSvc interface {
	VerifyCode(ctx context.Context, code string) (*domain.Gate, *domain.Event, error)
}

type WebhookTester interface {
	SendTest(ctx context.Context, url, secret string) (int, error)
}

type Handler struct {
	checkInService  CheckInSvc
	issuanceService IssuanceSvc
	gateAuthService GateAuthSvc
	webhookTester   WebhookTester
	codec           *qr.Codec
}

func NewHandler(checkInService CheckInSvc, issuanceService IssuanceSvc, gateAuthService GateAuthSvc, webhookTester WebhookTester, codec *qr.Codec) *Handler {
	return &Handler{
		checkInService:  checkInService,
		issuanceService: issuanceService,
		gateAuthService: gateAuthService,
		webhookTester:   webhookTester,
		codec:           codec,
	}
}

// Check-in

func (h *Handler) CheckIn(c *ginext.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := h.checkInService.CheckIn(c.Request.Context(), domain.CheckInInput{
		RawPayload: req.RawPayload,
		GateID:     req.GateID,
		ScannerID:  middleware.ScannerID(c),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Every classified scan answers 200; the verdict lives in the body.
	c.JSON(http.StatusOK, dto.ToCheckInResponse(outcome))
}

func (h *Handler) VerifyQR(c *ginext.Context) {
	var req dto.QRVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	pass, err := h.checkInService.VerifyPayload(c.Request.Context(), req.Payload, req.PartnerID)
	if err != nil {
		if isScanClassification(err) {
			c.JSON(http.StatusOK, dto.QRVerifyResponse{Valid: false, Error: err.Error()})
			return
		}
		h.handleError(c, err)
		return
	}

	passResp := dto.ToPassResponse(pass)
	c.JSON(http.StatusOK, dto.QRVerifyResponse{Valid: true, Pass: &passResp})
}

func (h *Handler) GenerateQR(c *ginext.Context) {
	var req dto.QRGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if req.Format != "" && req.Format != "png" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unsupported format, expected png"})
		return
	}

	dataURL, err := qr.RenderPNGDataURL(req.Payload, qr.RenderOptions{
		Size:       req.Size,
		Level:      req.Level,
		MarginSize: req.MarginSize,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QRGenerateResponse{DataURL: dataURL})
}

// Gates

func (h *Handler) VerifyGateCode(c *ginext.Context) {
	var req dto.GateVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	gate, event, err := h.gateAuthService.VerifyCode(c.Request.Context(), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGateVerifyResponse(gate, event))
}

func (h *Handler) GenerateGateCode(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	code, err := h.issuanceService.GenerateGateAccessCode(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.GateCodeResponse{AccessCode: code})
}

// Passes

func (h *Handler) IssuePass(c *ginext.Context) {
	var req dto.IssuePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	validFrom, err := parseTimePtr(req.ValidFrom)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_from format, expected RFC3339",
		})
		return
	}
	validTo, err := parseTimePtr(req.ValidTo)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid valid_to format, expected RFC3339",
		})
		return
	}

	format := qr.FormatV2
	if req.PayloadFormat != "" {
		format = qr.Format(req.PayloadFormat)
	}
	includeSignature := true
	if req.IncludeSignature != nil {
		includeSignature = *req.IncludeSignature
	}

	pass, err := h.issuanceService.IssuePass(c.Request.Context(), domain.IssuePassInput{
		EventID:   req.EventID,
		GuestID:   req.GuestID,
		MaxUses:   req.MaxUses,
		ValidFrom: validFrom,
		ValidTo:   validTo,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	payload, err := h.codec.Encode(pass.ID, pass.Token, pass.EventID, format, includeSignature)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.IssuePassResponse{
		Pass:      dto.ToPassResponse(pass),
		QRPayload: payload,
	})
}

func (h *Handler) RevokePass(c *ginext.Context) {
	passID := c.Param("id")
	if _, err := uuid.Parse(passID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pass id"})
		return
	}

	pass, err := h.checkInService.Revoke(c.Request.Context(), passID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPassResponse(pass))
}

// Scan logs

func (h *Handler) ListScanLogs(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.checkInService.ListScanLogs(c.Request.Context(), eventID, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToScanLogResponses(logs))
}

// Webhooks

func (h *Handler) TestWebhook(c *ginext.Context) {
	var req dto.TestWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	status, err := h.webhookTester.SendTest(c.Request.Context(), req.URL, req.Secret)
	if err != nil {
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.TestWebhookResponse{StatusCode: status})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrPassNotFound),
		errors.Is(err, domain.ErrGateNotFound),
		errors.Is(err, domain.ErrPartnerNotFound),
		errors.Is(err, domain.ErrGateCodeInvalid):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyUsed),
		errors.Is(err, domain.ErrAlreadyRevoked),
		errors.Is(err, domain.ErrPassRevoked),
		errors.Is(err, domain.ErrPassExpired),
		errors.Is(err, domain.ErrPassNotYetValid),
		errors.Is(err, domain.ErrEventInactive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrMalformedPayload),
		errors.Is(err, domain.ErrUnrecognizedFormat),
		errors.Is(err, domain.ErrSignatureMismatch),
		errors.Is(err, domain.ErrUnsignedPayload):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrTokenExhausted):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func isScanClassification(err error) bool {
	return errors.Is(err, domain.ErrMalformedPayload) ||
		errors.Is(err, domain.ErrUnrecognizedFormat) ||
		errors.Is(err, domain.ErrSignatureMismatch) ||
		errors.Is(err, domain.ErrUnsignedPayload) ||
		errors.Is(err, domain.ErrPassNotFound) ||
		errors.Is(err, domain.ErrPassRevoked) ||
		errors.Is(err, domain.ErrPassExpired) ||
		errors.Is(err, domain.ErrPassNotYetValid) ||
		errors.Is(err, domain.ErrAlreadyUsed)
}

func parseTimePtr(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
