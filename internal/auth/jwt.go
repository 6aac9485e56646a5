package auth

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Session is what a verified token carries.
type Session struct {
	User      User
	TokenID   string
	ExpiresAt time.Time
}

// JWT signs and verifies HS256 session tokens. Logout revokes a token id
// until it would have expired anyway.
type JWT struct {
	secret []byte
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewJWT(secret string) *JWT {
	return &JWT{
		secret:  []byte(secret),
		now:     time.Now,
		revoked: map[string]time.Time{},
	}
}

func (j *JWT) Sign(u User) (string, error) {
	now := j.now()
	c := claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(j.secret)
}

func (j *JWT) Verify(tokenStr string) (Session, error) {
	var c claims
	t, err := jwt.ParseWithClaims(tokenStr, &c, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithTimeFunc(j.now), jwt.WithExpirationRequired())
	if err != nil || !t.Valid {
		return Session{}, ErrInvalidToken
	}
	if c.Subject == "" || c.ID == "" {
		return Session{}, ErrInvalidToken
	}
	if c.Role != RoleAdmin && c.Role != RoleUser {
		return Session{}, ErrInvalidToken
	}

	j.mu.Lock()
	_, gone := j.revoked[c.ID]
	j.mu.Unlock()
	if gone {
		return Session{}, ErrInvalidToken
	}

	return Session{
		User:      User{Username: c.Subject, Role: c.Role},
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Revoke invalidates a verified session's token.
func (j *JWT) Revoke(s Session) {
	now := j.now()
	j.mu.Lock()
	defer j.mu.Unlock()
	for id, exp := range j.revoked {
		if now.After(exp) {
			delete(j.revoked, id)
		}
	}
	j.revoked[s.TokenID] = s.ExpiresAt
}
