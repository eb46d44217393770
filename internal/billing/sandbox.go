package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SandboxGateway is an in-process provider for development and tests. It
// issues fake checkout URLs and never charges anyone.
type SandboxGateway struct {
	BaseURL string
	TTL     time.Duration
}

// NewSandboxGateway creates a sandbox gateway with sensible defaults.
func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{
		BaseURL: "https://billing.sandbox.invalid/checkout",
		TTL:     30 * time.Minute,
	}
}

// StartCheckout issues a fake checkout session for the user.
func (g *SandboxGateway) StartCheckout(_ context.Context, userID uuid.UUID) (*CheckoutSession, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("user ID is required")
	}
	id := "cs_sandbox_" + uuid.NewString()
	return &CheckoutSession{
		ID:        id,
		URL:       fmt.Sprintf("%s/%s", g.BaseURL, id),
		ExpiresAt: time.Now().Add(g.TTL),
	}, nil
}
