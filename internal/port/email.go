package port

import "context"

// ReturnLink is a downloadable artifact reference included in a return
// delivery email.
type ReturnLink struct {
	Label string
	URL   string
}

// EmailSender delivers generated return artifacts to a collaborating
// professional (accountant).
type EmailSender interface {
	SendReturnEmail(ctx context.Context, toEmail, businessName, period string, links []ReturnLink) error
}
