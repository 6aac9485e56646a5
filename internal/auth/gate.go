package auth

import "sync"

// Gate is a single-session front to a Registry: at most one user is current.
// Content consumers only read CurrentUser.
type Gate struct {
	reg *Registry

	mu      sync.RWMutex
	current *User
}

func NewGate(reg *Registry) *Gate {
	return &Gate{reg: reg}
}

func (g *Gate) CurrentUser() (User, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil {
		return User{}, false
	}
	return *g.current, true
}

// Login makes username current if the password matches. On failure the
// current user is left as it was.
func (g *Gate) Login(username, password string) bool {
	u, ok := g.reg.Verify(username, password)
	if !ok {
		return false
	}
	g.set(&u)
	return true
}

// Register creates the account and makes it current. It fails if the name
// is taken.
func (g *Gate) Register(username, password string) bool {
	u, ok := g.reg.Create(username, password)
	if !ok {
		return false
	}
	g.set(&u)
	return true
}

func (g *Gate) Logout() { g.set(nil) }

func (g *Gate) set(u *User) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current = u
}
