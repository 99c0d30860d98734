package costcontrol

import (
	"sync"
	"time"

	"github.com/diffen77/gastropartner-sub000/internal/costcalc"
	"github.com/diffen77/gastropartner-sub000/internal/kvstore"
)

// SessionManager hands out one calculator session per organization. Sessions
// are created lazily and live until Close; their target-margin preference is
// durable through the kv store, so a fresh session starts where the last one
// left off.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*costcalc.Calculator

	prefs kvstore.Store
	delay time.Duration
}

func NewSessionManager(prefs kvstore.Store, delay time.Duration) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*costcalc.Calculator),
		prefs:    prefs,
		delay:    delay,
	}
}

// ForOrganization returns the organization's calculator, creating it on
// first use.
func (m *SessionManager) ForOrganization(organizationID string) *costcalc.Calculator {
	m.mu.Lock()
	defer m.mu.Unlock()

	if calc, ok := m.sessions[organizationID]; ok {
		return calc
	}
	calc := costcalc.NewCalculator(m.prefs, organizationID, m.delay)
	m.sessions[organizationID] = calc
	return calc
}

// Reset discards the organization's session so the next request starts a
// fresh one.
func (m *SessionManager) Reset(organizationID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if calc, ok := m.sessions[organizationID]; ok {
		calc.Close()
		delete(m.sessions, organizationID)
	}
}

// Close stops every session's pending timer.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, calc := range m.sessions {
		calc.Close()
		delete(m.sessions, id)
	}
}
