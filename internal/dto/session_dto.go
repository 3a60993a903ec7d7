package dto

import "foundercompass/internal/catalog"

type StartSessionRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	CompanySize string `json:"companySize" validate:"required"`
}

type StartSessionResponse struct {
	SessionID string             `json:"sessionId"`
	UserID    string             `json:"userId"`
	Questions []catalog.Question `json:"questions"`
}

type CompleteSessionResponse struct {
	Report ReportResponse `json:"report"`
}

type TrackEventRequest struct {
	SessionID string         `json:"sessionId" validate:"omitempty"`
	UserID    string         `json:"userId" validate:"omitempty"`
	EventType string         `json:"eventType" validate:"required,oneof=completion drop_off cta_click"`
	Details   map[string]any `json:"details" validate:"omitempty"`
}
