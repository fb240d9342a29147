package dashboard

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

type starter interface {
	Start(ctx context.Context, identity models.Identity)
	Teardown()
}

// Gate lets the dashboard run only while an identity is present. It follows
// the session store: a present identity starts the controller, an absent one
// tears it down and hands control back to sign-in.
type Gate struct {
	session   SessionStore
	dashboard starter
	onAbsent  func()

	mu          sync.Mutex
	unsubscribe func()
}

// NewGate wires a gate. onAbsent runs every time the session store reports
// that nobody is signed in, including right after Open.
func NewGate(session SessionStore, dashboard starter, onAbsent func()) *Gate {
	if onAbsent == nil {
		onAbsent = func() {}
	}
	return &Gate{session: session, dashboard: dashboard, onAbsent: onAbsent}
}

// Open subscribes to the session store. A second Open is a no-op.
func (g *Gate) Open(ctx context.Context) {
	g.mu.Lock()
	if g.unsubscribe != nil {
		g.mu.Unlock()
		return
	}
	g.unsubscribe = func() {}
	g.mu.Unlock()

	unsubscribe := g.session.Subscribe(func(identity *models.Identity) {
		if identity == nil {
			g.dashboard.Teardown()
			g.onAbsent()
			return
		}
		g.dashboard.Start(ctx, *identity)
	})

	g.mu.Lock()
	g.unsubscribe = unsubscribe
	g.mu.Unlock()
}

// Close stops following the session store and tears the dashboard down.
func (g *Gate) Close() {
	g.mu.Lock()
	unsubscribe := g.unsubscribe
	g.unsubscribe = nil
	g.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	g.dashboard.Teardown()
}
