package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/jonathan/resume-studio/internal/billing"
	"github.com/jonathan/resume-studio/internal/server/middleware"
)

// maxWebhookBody caps webhook payloads from the payment provider.
const maxWebhookBody = 64 << 10

// handleCheckout opens a provider checkout session for the caller.
func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	session, err := s.billing.StartCheckout(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusBadGateway, "Failed to start checkout")
		return
	}

	s.jsonResponse(w, http.StatusCreated, session)
}

// handleBillingWebhook applies a signed event from the payment provider.
// A completed payment flips the account's premium flag; everything else is
// acknowledged without effect.
func (s *Server) handleBillingWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read webhook body")
		return
	}

	signature := r.Header.Get(billing.SignatureHeader)
	if !billing.VerifySignature(s.billingSecret, body, signature) {
		log.Printf("[billing] Rejected webhook with bad signature from %s", r.RemoteAddr)
		s.errorResponse(w, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var event billing.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	if err := s.billing.ConfirmPayment(r.Context(), event); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to process webhook")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "received"})
}
