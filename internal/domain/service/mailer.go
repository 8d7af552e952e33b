package service

import "context"

// Mailer sends transactional mail such as verification and reset links.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
