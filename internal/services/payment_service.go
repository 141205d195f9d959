// internal/services/payment_service.go
package services

import (
	"fmt"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"
	"gorm.io/gorm"

	"github.com/rgsaudi/musicstore-backend/internal/config"
	"github.com/rgsaudi/musicstore-backend/internal/models"
)

// PaymentService handles the pre-placement payment round trip. For card
// payments it creates a Stripe PaymentIntent and hands the client secret back
// so the buyer completes authentication against Stripe directly; capture is
// never performed here.
type PaymentService struct {
	db  *gorm.DB
	cfg *config.Config
}

type ValidateOrderRequest struct {
	Firstname   string             `json:"firstname" validate:"required,max=191"`
	Lastname    string             `json:"lastname" validate:"required,max=191"`
	Phone       string             `json:"phone" validate:"required,max=191"`
	Email       string             `json:"email" validate:"required,email,max=191"`
	Address     string             `json:"address" validate:"required,max=191"`
	City        string             `json:"city" validate:"required,max=191"`
	State       string             `json:"state" validate:"required,max=191"`
	Zipcode     string             `json:"zipcode" validate:"required,max=191"`
	Amount      float64            `json:"amount" validate:"required,gt=0"`
	PaymentMode models.PaymentMode `json:"payment_mode"`
}

type ValidateOrderResponse struct {
	Message      string `json:"message"`
	ClientSecret string `json:"clientSecret,omitempty"`
}

func NewPaymentService(db *gorm.DB, cfg *config.Config) *PaymentService {
	// Initialize Stripe
	stripe.Key = cfg.Payment.StripeSecretKey

	return &PaymentService{
		db:  db,
		cfg: cfg,
	}
}

func (s *PaymentService) ValidateOrder(req *ValidateOrderRequest) (*ValidateOrderResponse, error) {
	switch req.PaymentMode {
	case models.PaymentModeStripe:
		// Stripe amounts are in the currency's minor unit.
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(int64(req.Amount * 100)),
			Currency: stripe.String(s.cfg.Payment.Currency),
		}
		params.AddMetadata("buyer_email", req.Email)

		pi, err := paymentintent.New(params)
		if err != nil {
			return nil, fmt.Errorf("failed to create payment intent: %w", err)
		}

		return &ValidateOrderResponse{
			Message:      "Form Validated Successfully",
			ClientSecret: pi.ClientSecret,
		}, nil

	case models.PaymentModePayOnline:
		// Capture happens client-side against the provider SDK; order
		// placement follows with the resulting payment reference.
		return &ValidateOrderResponse{Message: "payonline"}, nil

	default:
		return nil, &InvalidArgumentError{Message: "unsupported payment mode"}
	}
}
