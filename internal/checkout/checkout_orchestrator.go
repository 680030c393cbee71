package checkout

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/cart"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/order"
	"github.com/BaoDuy1703/Ecommerce/internal/payment"
	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

// State is the phase an orchestrator is in. It only moves forward while
// a run is active; a failed run parks in StateFailed until the next
// attempt, and a finished run returns to StateIdle.
type State string

const (
	StateIdle            State = "idle"
	StateCreatingOrder   State = "creating_order"
	StateCreatingPayment State = "creating_payment"
	StateRedirecting     State = "redirecting"
	StateFailed          State = "failed"
)

type CartGateway interface {
	Snapshot(ctx context.Context, userID string) ([]commerce.OrderItemInput, error)
	Clear(ctx context.Context, userID string) (cart.CartResponse, error)
}

type OrderCreator interface {
	Create(ctx context.Context, userID string, items []commerce.OrderItemInput) (order.OrderResponse, error)
}

type SessionCreator interface {
	CreateSession(ctx context.Context, orderID, provider string) (payment.SessionResponse, error)
}

// Orchestrator drives a single user's checkout: snapshot the cart,
// create the order, create the payment session, hand the browser off to
// the provider's hosted page. Exactly one run may be active at a time.
type Orchestrator struct {
	userID          string
	defaultProvider string

	carts    CartGateway
	orders   OrderCreator
	payments SessionCreator
	store    *syncstore.Store
	logger   *zap.Logger

	mu      sync.Mutex
	active  bool
	state   State
	orderID string
	lastErr error
}

// Start runs the full flow from the current cart. When the previous run
// failed it may be called again; the new run starts from scratch with a
// fresh cart snapshot. An empty cart refuses the run without leaving
// StateIdle and without touching the network.
func (o *Orchestrator) Start(ctx context.Context, provider string) (Result, error) {
	if err := o.begin(); err != nil {
		return Result{}, err
	}
	defer o.end()

	items, err := o.carts.Snapshot(ctx, o.userID)
	if err != nil {
		o.fail(err)
		return Result{}, err
	}
	if len(items) == 0 {
		o.setState(StateIdle)
		return Result{}, ErrCartEmpty
	}

	o.setState(StateCreatingOrder)
	ord, err := o.orders.Create(ctx, o.userID, items)
	if err != nil {
		o.fail(err)
		return Result{}, err
	}
	o.mu.Lock()
	o.orderID = ord.ID
	o.mu.Unlock()

	// From here on the order exists upstream. A payment failure must
	// not undo it: the order stays pending and the run can resume via
	// PayNow with the same order id.
	o.setState(StateCreatingPayment)
	sess, err := o.payments.CreateSession(ctx, ord.ID, o.pick(provider))
	if err != nil {
		o.fail(err)
		return Result{}, err
	}

	o.setState(StateRedirecting)
	if _, err := o.carts.Clear(ctx, o.userID); err != nil {
		// the hand-off already succeeded, a stale cart is the lesser
		// problem; the next cart read will refetch anyway
		o.logger.Warn("cart clear after checkout hand-off failed",
			zap.String("user_id", o.userID),
			zap.String("order_id", ord.ID),
			zap.Error(err),
		)
	}

	o.setState(StateIdle)
	return Result{OrderID: ord.ID, RedirectURL: sess.CheckoutURL}, nil
}

// PayNow re-enters the flow at the payment step for an order that was
// created earlier but never paid. The cart is not involved and is never
// cleared here.
func (o *Orchestrator) PayNow(ctx context.Context, orderID, provider string) (Result, error) {
	if orderID == "" {
		return Result{}, ErrInvalidOrderID
	}
	if err := o.begin(); err != nil {
		return Result{}, err
	}
	defer o.end()

	o.mu.Lock()
	o.orderID = orderID
	o.mu.Unlock()

	o.setState(StateCreatingPayment)
	sess, err := o.payments.CreateSession(ctx, orderID, o.pick(provider))
	if err != nil {
		o.fail(err)
		return Result{}, err
	}

	o.setState(StateRedirecting)
	o.setState(StateIdle)
	return Result{OrderID: orderID, RedirectURL: sess.CheckoutURL}, nil
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()

	st := Status{State: o.state, OrderID: o.orderID}
	if o.lastErr != nil {
		st.LastError = o.lastErr.Error()
	}
	return st
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) LastError() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.lastErr
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.active {
		return ErrCheckoutInProgress
	}
	o.active = true
	o.lastErr = nil
	return nil
}

func (o *Orchestrator) end() {
	o.mu.Lock()
	o.active = false
	o.mu.Unlock()
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	o.store.Notify(syncstore.CheckoutKey(o.userID))
}

func (o *Orchestrator) fail(err error) {
	o.mu.Lock()
	o.state = StateFailed
	o.lastErr = err
	o.mu.Unlock()
	o.store.Notify(syncstore.CheckoutKey(o.userID))
}

func (o *Orchestrator) pick(provider string) string {
	if provider == "" {
		return o.defaultProvider
	}
	return provider
}
