package dto

type CheckInRequest struct {
	RawPayload string `json:"raw_payload" binding:"required"`
	GateID     string `json:"gate_id" binding:"required,uuid"`
}

type QRVerifyRequest struct {
	Payload   string `json:"payload" binding:"required"`
	PartnerID string `json:"partner_id"`
}

type QRGenerateRequest struct {
	Payload    string `json:"payload" binding:"required"`
	Size       int    `json:"size"`
	Level      string `json:"level"`
	MarginSize int    `json:"marginSize"`
	Format     string `json:"format"`
}

type GateVerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

type IssuePassRequest struct {
	EventID          string  `json:"event_id" binding:"required,uuid"`
	GuestID          string  `json:"guest_id" binding:"required,uuid"`
	MaxUses          int     `json:"max_uses"`
	ValidFrom        *string `json:"valid_from"`
	ValidTo          *string `json:"valid_to"`
	PayloadFormat    string  `json:"payload_format"`
	IncludeSignature *bool   `json:"include_signature"`
}

type TestWebhookRequest struct {
	URL    string `json:"url" binding:"required,url"`
	Secret string `json:"secret" binding:"required"`
}
