// Package email delivers the finished estimate summary over SMTP.
package email

import "context"

// SummaryLine is one priced line in the outgoing summary mail.
type SummaryLine struct {
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice float64
	Subtotal  float64
}

// EstimateSummary is the renderable payload for the summary mail. It is a
// plain data shape so the conversation layer does not leak its state types
// into the mailer.
type EstimateSummary struct {
	ProjectName string
	RoomName    string
	Lines       []SummaryLine
	Errors      []string
	Subtotal    float64
	Markup      float64
	GrandTotal  float64
}

// Sender delivers estimate summaries. Implemented by SMTPSender.
type Sender interface {
	SendEstimateSummary(ctx context.Context, summary EstimateSummary) error
}
