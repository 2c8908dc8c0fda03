package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
)

// InviteService mints and validates signed table invite tokens. A token binds
// a match id to the host who issued it, with a bounded lifetime, so a client
// can hand it to a friend out of band.
type InviteService struct {
	secret string
	ttl    time.Duration
}

var (
	ErrInviteInvalid = errors.New("invite token is invalid")
	ErrInviteExpired = errors.New("invite token has expired")
)

// NewInviteService constructs the service. secret must be non-empty for
// token operations to succeed; a zero ttl falls back to 24h.
func NewInviteService(secret string, ttl time.Duration) *InviteService {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &InviteService{secret: secret, ttl: ttl}
}

// Invite is the validated content of a table invite token.
type Invite struct {
	MatchID    string
	HostUserID string
}

// CreateToken mints an HS256 token for the given match and host.
func (s *InviteService) CreateToken(matchID, hostUserID string) (string, error) {
	if s.secret == "" {
		return "", fmt.Errorf("invite secret is not configured")
	}
	if matchID == "" || hostUserID == "" {
		return "", fmt.Errorf("match id and host user id are required")
	}

	claims := jwt.MapClaims{
		"mid": matchID,
		"hst": hostUserID,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ParseToken validates a token and returns its invite content.
func (s *InviteService) ParseToken(tokenString string) (Invite, error) {
	if s.secret == "" {
		return Invite{}, fmt.Errorf("invite secret is not configured")
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return Invite{}, ErrInviteExpired
		}
		return Invite{}, ErrInviteInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Invite{}, ErrInviteInvalid
	}
	matchID, _ := claims["mid"].(string)
	hostUserID, _ := claims["hst"].(string)
	if matchID == "" || hostUserID == "" {
		return Invite{}, ErrInviteInvalid
	}
	return Invite{MatchID: matchID, HostUserID: hostUserID}, nil
}
