// Package billing integrates the external payment collaborator. The service
// only ever learns one fact from a payment: which user to mark premium. All
// pricing, invoicing and retry logic lives on the provider side.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CheckoutSession is the provider-hosted payment page handed back to the
// client. The client redirects the user to URL and the provider calls the
// webhook when payment completes.
type CheckoutSession struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Gateway abstracts the payment provider.
type Gateway interface {
	// StartCheckout opens a checkout session for upgrading one user
	StartCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error)
}

// WebhookEvent is the payload the provider posts after a payment attempt.
type WebhookEvent struct {
	Type      string    `json:"type"`
	SessionID string    `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
}

// EventPaymentCompleted is the only event type that changes account state.
const EventPaymentCompleted = "payment.completed"

// PremiumSetter is the slice of the persistence layer billing needs.
type PremiumSetter interface {
	SetPremium(ctx context.Context, userID uuid.UUID, premium bool) error
}

// Service handles checkout initiation and webhook confirmation.
type Service struct {
	gateway Gateway
	users   PremiumSetter
}

// NewService creates a billing service.
func NewService(gateway Gateway, users PremiumSetter) *Service {
	return &Service{gateway: gateway, users: users}
}

// StartCheckout opens a provider checkout session for the user.
func (s *Service) StartCheckout(ctx context.Context, userID uuid.UUID) (*CheckoutSession, error) {
	session, err := s.gateway.StartCheckout(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to start checkout: %w", err)
	}
	return session, nil
}

// ConfirmPayment applies a verified webhook event. Completed payments flip
// the user's premium flag; every other event type is acknowledged and
// ignored.
func (s *Service) ConfirmPayment(ctx context.Context, event WebhookEvent) error {
	if event.Type != EventPaymentCompleted {
		return nil
	}
	if event.UserID == uuid.Nil {
		return fmt.Errorf("webhook event has no user ID")
	}
	if err := s.users.SetPremium(ctx, event.UserID, true); err != nil {
		return fmt.Errorf("failed to confirm payment: %w", err)
	}
	return nil
}
