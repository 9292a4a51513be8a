package ses

import (
	"context"
	"fmt"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"gstrly/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendReturnEmail(ctx context.Context, toEmail, businessName, period string, links []port.ReturnLink) error {
	subject := fmt.Sprintf("GSTR-1 return for %s, period %s", businessName, displayPeriod(period))
	htmlBody := buildReturnHTML(businessName, displayPeriod(period), links)
	textBody := buildReturnText(businessName, displayPeriod(period), links)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// displayPeriod renders a MMYYYY token as MM/YYYY for email copy.
func displayPeriod(period string) string {
	if len(period) != 6 {
		return period
	}
	return period[:2] + "/" + period[2:]
}

func buildReturnText(businessName, period string, links []port.ReturnLink) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nThe GSTR-1 return for %s (period %s) is ready for review.\n\n", businessName, period)
	for _, link := range links {
		fmt.Fprintf(&b, "%s:\n%s\n\n", link.Label, link.URL)
	}
	b.WriteString("The download links expire after a limited time.\n\nGSTRLY Team")
	return b.String()
}

func buildReturnHTML(businessName, period string, links []port.ReturnLink) string {
	var items strings.Builder
	for _, link := range links {
		fmt.Fprintf(&items, `  <p style="margin: 12px 0;">
    <a href="%s" style="background-color: #4F46E5; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">%s</a>
  </p>
`, link.URL, link.Label)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">GSTR-1 return ready for review</h2>
  <p>Hello,</p>
  <p>The GSTR-1 return for <strong>%s</strong> (period %s) has been generated and is ready for review:</p>
%s  <p style="color: #999; font-size: 12px;">The download links expire after a limited time.</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">GSTRLY - GST Invoicing for Small Business</p>
</body>
</html>`, businessName, period, items.String())
}
