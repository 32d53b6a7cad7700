package dto

import (
	"time"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type PassResponse struct {
	ID             string  `json:"id"`
	EventID        string  `json:"event_id"`
	GuestID        string  `json:"guest_id"`
	Token          string  `json:"token"`
	Status         string  `json:"status"`
	UseCount       int     `json:"use_count"`
	MaxUses        int     `json:"max_uses"`
	ValidFrom      *string `json:"valid_from,omitempty"`
	ValidTo        *string `json:"valid_to,omitempty"`
	FirstScannedAt *string `json:"first_scanned_at,omitempty"`
	LastScannedAt  *string `json:"last_scanned_at,omitempty"`
	RevokedAt      *string `json:"revoked_at,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type IssuePassResponse struct {
	Pass      PassResponse `json:"pass"`
	QRPayload string       `json:"qr_payload"`
}

type CheckInResponse struct {
	Result         string        `json:"result"`
	Pass           *PassResponse `json:"pass,omitempty"`
	FirstScannedAt *string       `json:"first_scanned_at,omitempty"`
	LastScannedAt  *string       `json:"last_scanned_at,omitempty"`
}

type QRVerifyResponse struct {
	Valid bool          `json:"valid"`
	Pass  *PassResponse `json:"pass,omitempty"`
	Error string        `json:"error,omitempty"`
}

type QRGenerateResponse struct {
	DataURL string `json:"data_url"`
}

type GateResponse struct {
	ID      string `json:"id"`
	EventID string `json:"event_id"`
	Name    string `json:"name"`
}

type EventResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	StartsAt string `json:"starts_at"`
	EndsAt   string `json:"ends_at"`
}

type GateVerifyResponse struct {
	Gate  GateResponse  `json:"gate"`
	Event EventResponse `json:"event"`
}

type GateCodeResponse struct {
	AccessCode string `json:"access_code"`
}

type ScanLogResponse struct {
	ID               string  `json:"id"`
	EventID          string  `json:"event_id"`
	GateID           string  `json:"gate_id"`
	PassID           *string `json:"pass_id,omitempty"`
	ScannerUserID    *string `json:"scanner_user_id,omitempty"`
	Result           string  `json:"result"`
	RawPayload       string  `json:"raw_payload"`
	ProcessingTimeMs int64   `json:"processing_time_ms"`
	ScannedAt        string  `json:"scanned_at"`
}

type TestWebhookResponse struct {
	StatusCode int `json:"status_code"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPassResponse(p *domain.Pass) PassResponse {
	return PassResponse{
		ID:             p.ID,
		EventID:        p.EventID,
		GuestID:        p.GuestID,
		Token:          p.Token,
		Status:         string(p.Status),
		UseCount:       p.UseCount,
		MaxUses:        p.MaxUses,
		ValidFrom:      formatTimePtr(p.ValidFrom),
		ValidTo:        formatTimePtr(p.ValidTo),
		FirstScannedAt: formatTimePtr(p.FirstScannedAt),
		LastScannedAt:  formatTimePtr(p.LastScannedAt),
		RevokedAt:      formatTimePtr(p.RevokedAt),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}
}

func ToCheckInResponse(o *domain.CheckInOutcome) CheckInResponse {
	resp := CheckInResponse{Result: string(o.Result)}
	if o.Pass != nil {
		passResp := ToPassResponse(o.Pass)
		resp.Pass = &passResp
		resp.FirstScannedAt = passResp.FirstScannedAt
		resp.LastScannedAt = passResp.LastScannedAt
	}
	return resp
}

func ToGateVerifyResponse(g *domain.Gate, e *domain.Event) GateVerifyResponse {
	return GateVerifyResponse{
		Gate: GateResponse{
			ID:      g.ID,
			EventID: g.EventID,
			Name:    g.Name,
		},
		Event: EventResponse{
			ID:       e.ID,
			Title:    e.Title,
			Status:   string(e.Status),
			StartsAt: e.StartsAt.Format(time.RFC3339),
			EndsAt:   e.EndsAt.Format(time.RFC3339),
		},
	}
}

func ToScanLogResponse(l *domain.ScanLog) ScanLogResponse {
	return ScanLogResponse{
		ID:               l.ID,
		EventID:          l.EventID,
		GateID:           l.GateID,
		PassID:           l.PassID,
		ScannerUserID:    l.ScannerUserID,
		Result:           string(l.Result),
		RawPayload:       l.RawPayload,
		ProcessingTimeMs: l.ProcessingTimeMs,
		ScannedAt:        l.ScannedAt.Format(time.RFC3339),
	}
}

func ToScanLogResponses(logs []*domain.ScanLog) []ScanLogResponse {
	out := make([]ScanLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, ToScanLogResponse(l))
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
