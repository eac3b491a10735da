package mailing

import (
	"context"
	"time"

	"smart-pantry-backend/domain"
)

// ExpiryNotifier delivers the daily expiry digest for one user. Sends are
// bounded by a timeout so a hung SMTP dial cannot stall the scheduler's
// progress through the remaining users.
type ExpiryNotifier struct {
	sender  Sender
	timeout time.Duration
}

func NewExpiryNotifier(sender Sender, timeout time.Duration) *ExpiryNotifier {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ExpiryNotifier{sender: sender, timeout: timeout}
}

func (n *ExpiryNotifier) NotifyExpiring(ctx context.Context, email string, username string, items []domain.ExpiringItem) error {
	if len(items) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- n.sender.Send(email, ExpirySubject(len(items)), ExpiryDigestBody(username, items))
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
