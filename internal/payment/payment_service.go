package payment

import (
	"context"

	"github.com/BaoDuy1703/Ecommerce/internal/commerce"

	"go.uber.org/zap"
)

// CommerceAPI is the slice of the commerce client the payment controller needs.
type CommerceAPI interface {
	GetOrder(ctx context.Context, id string) (commerce.Order, error)
	CreatePaymentSession(ctx context.Context, orderID, provider string) (commerce.PaymentSession, error)
}

// SnapProvider creates a hosted checkout session directly against Midtrans.
type SnapProvider interface {
	CreateSession(order commerce.Order) (commerce.PaymentSession, error)
}

type Service interface {
	// CreateSession requests a hosted checkout session for a pending (or
	// failed, to permit retry) order. One-shot: every call creates a new
	// session.
	CreateSession(ctx context.Context, orderID, provider string) (SessionResponse, error)
}

type service struct {
	api             CommerceAPI
	snap            SnapProvider
	defaultProvider string
	logger          *zap.Logger
}

func NewService(api CommerceAPI, snap SnapProvider, defaultProvider string, logger *zap.Logger) Service {
	if defaultProvider == "" {
		defaultProvider = ProviderStripe
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:             api,
		snap:            snap,
		defaultProvider: defaultProvider,
		logger:          logger,
	}
}

func (s *service) CreateSession(ctx context.Context, orderID, provider string) (SessionResponse, error) {
	if orderID == "" {
		return SessionResponse{}, ErrInvalidOrderID
	}
	if provider == "" {
		provider = s.defaultProvider
	}

	logger := s.logger.With(
		zap.String("order_id", orderID),
		zap.String("provider", provider),
	)

	o, err := s.api.GetOrder(ctx, orderID)
	if err != nil {
		return SessionResponse{}, err
	}
	if o.Status == commerce.OrderStatusPaid {
		return SessionResponse{}, ErrOrderAlreadyPaid
	}

	var session commerce.PaymentSession
	switch provider {
	case ProviderMidtrans:
		if s.snap == nil {
			return SessionResponse{}, ErrUnknownProvider
		}
		session, err = s.snap.CreateSession(o)
	case ProviderStripe:
		session, err = s.api.CreatePaymentSession(ctx, orderID, provider)
	default:
		return SessionResponse{}, ErrUnknownProvider
	}
	if err != nil {
		logger.Error("failed to create payment session", zap.Error(err))
		return SessionResponse{}, err
	}

	logger.Info("payment session created")
	return SessionResponse{
		OrderID:     orderID,
		Provider:    provider,
		CheckoutURL: session.CheckoutURL,
	}, nil
}
