package noop

import (
	"context"
	"log"

	"gstrly/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs return links to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReturnEmail(_ context.Context, toEmail, businessName, period string, links []port.ReturnLink) error {
	log.Printf("[NOOP EMAIL] GSTR-1 return for %s, period %s, to %s:", businessName, period, toEmail)
	for _, link := range links {
		log.Printf("[NOOP EMAIL]   %s: %s", link.Label, link.URL)
	}
	return nil
}
