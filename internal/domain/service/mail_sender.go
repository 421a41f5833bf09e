// Package service defines contracts for infrastructure capabilities the use
// cases depend on, keeping the application layer free of transport details.
package service

import "context"

// MailSender delivers transactional email. Send blocks until the message has
// been handed to the transport or the attempt failed; there is no retry at
// this level.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
