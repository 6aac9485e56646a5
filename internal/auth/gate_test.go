package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r := NewRegistry("admin", nil)
	require.NoError(t, r.Seed("admin", "lumina123"))
	require.NoError(t, r.Seed("visitor", "visitor123"))
	return r
}

func TestRegistry_VerifyAssignsRoles(t *testing.T) {
	r := newRegistry(t)

	u, ok := r.Verify("admin", "lumina123")
	require.True(t, ok)
	assert.Equal(t, User{Username: "admin", Role: RoleAdmin}, u)

	u, ok = r.Verify(" visitor ", "visitor123")
	require.True(t, ok)
	assert.Equal(t, RoleUser, u.Role)

	_, ok = r.Verify("admin", "wrong")
	assert.False(t, ok)
	_, ok = r.Verify("nobody", "whatever1")
	assert.False(t, ok)
}

func TestRegistry_Create(t *testing.T) {
	r := newRegistry(t)

	u, ok := r.Create("newbie", "longenough")
	require.True(t, ok)
	assert.Equal(t, User{Username: "newbie", Role: RoleUser}, u)

	_, ok = r.Create("newbie", "different1")
	assert.False(t, ok, "name taken")
	_, ok = r.Create("visitor", "whatever12")
	assert.False(t, ok, "seeded name taken")
	_, ok = r.Create("  ", "longenough")
	assert.False(t, ok)
	_, ok = r.Create("nopass", "")
	assert.False(t, ok)

	_, ok = r.Verify("newbie", "longenough")
	assert.True(t, ok)
}

func TestGate_LoginLogout(t *testing.T) {
	g := NewGate(newRegistry(t))

	_, ok := g.CurrentUser()
	assert.False(t, ok)

	require.True(t, g.Login("visitor", "visitor123"))
	u, ok := g.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "visitor", u.Username)

	// a failed login keeps the current user
	assert.False(t, g.Login("admin", "nope"))
	u, _ = g.CurrentUser()
	assert.Equal(t, "visitor", u.Username)

	g.Logout()
	_, ok = g.CurrentUser()
	assert.False(t, ok)
}

func TestGate_Register(t *testing.T) {
	g := NewGate(newRegistry(t))
	require.True(t, g.Login("admin", "lumina123"))

	assert.False(t, g.Register("visitor", "whatever12"))
	u, _ := g.CurrentUser()
	assert.Equal(t, "admin", u.Username, "failed register leaves current user")

	require.True(t, g.Register("reader", "readme123"))
	u, _ = g.CurrentUser()
	assert.Equal(t, User{Username: "reader", Role: RoleUser}, u)
}

func TestGate_RegisterShortPassword(t *testing.T) {
	g := NewGate(NewRegistry("admin", nil))

	require.True(t, g.Register("bob", "abc"))
	u, ok := g.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "bob", u.Username)

	g.Logout()
	assert.True(t, g.Login("bob", "abc"))
}
