package checkout

import (
	"sync"

	"go.uber.org/zap"

	"github.com/BaoDuy1703/Ecommerce/internal/syncstore"
)

type Deps struct {
	Carts           CartGateway
	Orders          OrderCreator
	Payments        SessionCreator
	Store           *syncstore.Store
	DefaultProvider string
	Logger          *zap.Logger
}

// Manager hands out one orchestrator per user and keeps it alive so
// state survives across requests.
type Manager struct {
	deps Deps

	mu    sync.Mutex
	users map[string]*Orchestrator
}

func NewManager(deps Deps) *Manager {
	if deps.Carts == nil || deps.Orders == nil || deps.Payments == nil {
		panic("checkout: manager requires cart, order and payment gateways")
	}
	if deps.Store == nil {
		panic("checkout: manager requires a sync store")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Manager{
		deps:  deps,
		users: make(map[string]*Orchestrator),
	}
}

func (m *Manager) For(userID string) *Orchestrator {
	m.mu.Lock()
	defer m.mu.Unlock()

	if o, ok := m.users[userID]; ok {
		return o
	}
	o := &Orchestrator{
		userID:          userID,
		defaultProvider: m.deps.DefaultProvider,
		carts:           m.deps.Carts,
		orders:          m.deps.Orders,
		payments:        m.deps.Payments,
		store:           m.deps.Store,
		logger:          m.deps.Logger,
		state:           StateIdle,
	}
	m.users[userID] = o
	return o
}
