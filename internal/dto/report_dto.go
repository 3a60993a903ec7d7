package dto

import (
	"encoding/json"
	"time"

	"foundercompass/internal/entity"
)

type NextMoveResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Details     string `json:"details"`
}

type ReportResponse struct {
	ID                      string           `json:"id"`
	UserID                  string           `json:"userId"`
	SessionID               string           `json:"sessionId"`
	MindsetShift            string           `json:"mindsetShift"`
	MindsetShiftInsight     string           `json:"mindsetShiftInsight"`
	OperationalFocus        string           `json:"operationalFocus"`
	OperationalFocusInsight string           `json:"operationalFocusInsight"`
	NextMove                NextMoveResponse `json:"nextMove"`
	GeneratedAt             time.Time        `json:"generatedAt"`
}

// ReportResponseFromEntity renders ids as strings and tolerates a missing or
// unreadable next move by falling back to an empty object.
func ReportResponseFromEntity(report *entity.Report) ReportResponse {
	var nextMove NextMoveResponse
	if len(report.NextMove) > 0 {
		_ = json.Unmarshal(report.NextMove, &nextMove)
	}
	return ReportResponse{
		ID:                      report.ID.String(),
		UserID:                  report.UserID.String(),
		SessionID:               report.SessionID.String(),
		MindsetShift:            report.MindsetShift,
		MindsetShiftInsight:     report.MindsetShiftInsight,
		OperationalFocus:        report.OperationalFocus,
		OperationalFocusInsight: report.OperationalFocusInsight,
		NextMove:                nextMove,
		GeneratedAt:             report.GeneratedAt,
	}
}

func ReportResponsesFromEntities(reports []entity.Report) []ReportResponse {
	responses := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		responses = append(responses, ReportResponseFromEntity(&reports[i]))
	}
	return responses
}
