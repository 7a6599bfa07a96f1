// Package email provides the email client for sending transactional emails.
package email

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/resendlabs/resend-go"

	"github.com/pagesmith/pagesmith-go/pkg/config"
)

// Service defines the interface for sending emails, allowing for mock
// implementations in tests.
type Service interface {
	SendFormSubmissionEmail(toEmail, formID string, fields map[string]string) error
}

// ResendClient is the concrete implementation of the email Service using the
// Resend API.
type ResendClient struct {
	client    *resend.Client
	fromEmail string
	fromName  string
}

// NewService creates a new email service client, returning the Service interface.
func NewService() (Service, error) {
	if config.ResendAPIKey == "" {
		return nil, fmt.Errorf("RESEND_API_KEY environment variable is required")
	}

	return &ResendClient{
		client:    resend.NewClient(config.ResendAPIKey),
		fromEmail: config.EmailFrom,
		fromName:  config.EmailFromName,
	}, nil
}

// SendFormSubmissionEmail notifies the site owner about a new form submission.
func (c *ResendClient) SendFormSubmissionEmail(toEmail, formID string, fields map[string]string) error {
	subject := fmt.Sprintf("New form submission: %s", formID)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail),
		To:      []string{toEmail},
		Subject: subject,
		Html:    formSubmissionBody(fields),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send form submission email: %w", err)
	}
	return nil
}

// formSubmissionBody renders the submitted fields as an HTML table. Keys and
// values come straight from the public form endpoint, so both are escaped.
func formSubmissionBody(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var body strings.Builder
	body.WriteString("<h2>New form submission</h2><table>")
	for _, key := range keys {
		fmt.Fprintf(&body, "<tr><td><strong>%s</strong></td><td>%s</td></tr>",
			html.EscapeString(key), html.EscapeString(fields[key]))
	}
	body.WriteString("</table>")
	return body.String()
}
