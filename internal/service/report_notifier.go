package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"foundercompass/internal/entity"

	"github.com/resend/resend-go/v2"
)

// ResendReportNotifier emails the finished report through the Resend API.
type ResendReportNotifier struct {
	Client *resend.Client
	From   string
}

func NewResendReportNotifier(apiKey string, from string) *ResendReportNotifier {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return nil
	}
	return &ResendReportNotifier{
		Client: resend.NewClient(apiKey),
		From:   from,
	}
}

func (n *ResendReportNotifier) SendReportEmail(_ context.Context, user *entity.User, report *entity.Report) error {
	var nextMove NextMove
	if len(report.NextMove) > 0 {
		if err := json.Unmarshal(report.NextMove, &nextMove); err != nil {
			return fmt.Errorf("decode next move: %w", err)
		}
	}

	body := fmt.Sprintf(`Hello %s,

Here is your personalized report:

Top Mindset Shift: %s
Insight: %s

Top Operational Focus: %s
Insight: %s

Suggested Next Move: %s - %s
Details: %s

Thank you for using Founder Compass!
`,
		user.FullName,
		report.MindsetShift,
		report.MindsetShiftInsight,
		report.OperationalFocus,
		report.OperationalFocusInsight,
		nextMove.Type,
		nextMove.Description,
		nextMove.Details,
	)

	_, err := n.Client.Emails.Send(&resend.SendEmailRequest{
		From:    n.From,
		To:      []string{user.Email},
		Subject: "Your Founder Compass Report",
		Text:    body,
	})
	return err
}
