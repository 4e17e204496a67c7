package email

import "context"

// Provider sends email.
type Provider interface {
	Send(ctx context.Context, email *Email) error
	// Recipient is where admin notifications go; empty disables them.
	Recipient() string
}

// NoopProvider drops every message. Used when SMTP is not configured.
type NoopProvider struct{}

func (NoopProvider) Send(context.Context, *Email) error { return nil }

func (NoopProvider) Recipient() string { return "" }
