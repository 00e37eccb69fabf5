package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the payload of access tokens minted by the account service.
// The candidate is identified by user_id, or by sub when user_id is absent.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type,omitempty"`

	jwtlib.RegisteredClaims
}

type Validator interface {
	ValidateAccessToken(tokenString string) (Claims, error)
}

type HMACService struct {
	accessSecret []byte
	now          func() time.Time
}

func NewHMACService(accessSecret string) *HMACService {
	return &HMACService{accessSecret: []byte(accessSecret), now: time.Now}
}

// ValidateAccessToken verifies an HS256 access token and resolves the
// subject. Refresh tokens are rejected.
func (s *HMACService) ValidateAccessToken(tokenString string) (Claims, error) {
	if len(s.accessSecret) == 0 {
		return Claims{}, ErrTokenInvalid
	}

	p := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(*jwtlib.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}

	switch c.TokenType {
	case "", TokenTypeAccess:
	default:
		return Claims{}, ErrTokenInvalid
	}

	if c.UserID == uuid.Nil {
		id, err := uuid.Parse(c.Subject)
		if err != nil {
			return Claims{}, ErrTokenInvalid
		}
		c.UserID = id
	}
	if c.UserID == uuid.Nil {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
