package auth

import (
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Registry is the in-memory credential store. Passwords are kept as bcrypt
// hashes. The account whose name equals the configured admin name gets the
// admin role; everyone else is a user.
type Registry struct {
	admin string
	log   *zap.Logger

	mu     sync.RWMutex
	hashes map[string]string
}

func NewRegistry(adminName string, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		admin:  adminName,
		log:    log,
		hashes: map[string]string{},
	}
}

// Seed installs an account without the password length rule. It is meant for
// configured accounts at startup and overwrites an existing entry.
func (r *Registry) Seed(username, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hashes[strings.TrimSpace(username)] = hash
	return nil
}

// Create registers a new account. It returns false if the name is taken or
// either field is empty.
func (r *Registry) Create(username, password string) (User, bool) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return User{}, false
	}
	if r.exists(username) {
		return User{}, false
	}

	hash, err := HashPassword(password)
	if err != nil {
		r.log.Error("hash password", zap.Error(err))
		return User{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// re-check: another Create may have won while we were hashing
	if _, ok := r.hashes[username]; ok {
		return User{}, false
	}
	r.hashes[username] = hash
	r.log.Info("account registered", zap.String("username", username))
	return r.userFor(username), true
}

// Verify checks a username/password pair.
func (r *Registry) Verify(username, password string) (User, bool) {
	username = strings.TrimSpace(username)
	r.mu.RLock()
	hash, ok := r.hashes[username]
	r.mu.RUnlock()
	if !ok || !ComparePassword(hash, password) {
		return User{}, false
	}
	return r.userFor(username), true
}

func (r *Registry) exists(username string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.hashes[username]
	return ok
}

func (r *Registry) userFor(username string) User {
	role := RoleUser
	if username == r.admin {
		role = RoleAdmin
	}
	return User{Username: username, Role: role}
}
