// Package token signs sessions into portable JWTs and validates them on the
// way back in. The token is the only place a session lives server-side.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"dashboard_backend/internal/feature/access/domain/entity"
)

// ErrInvalidToken is returned for any token that fails signature or
// lifetime validation.
var ErrInvalidToken = errors.New("invalid session token")

// sessionClaims is the wire form of a session. Only the persisted subset of
// session state travels in the token; transient UI state never does.
type sessionClaims struct {
	AccessType  string             `json:"atp"`
	Client      *entity.ClientInfo `json:"cli,omitempty"`
	ClientIDs   []uint             `json:"cids,omitempty"`
	CodeVersion string             `json:"cv"`
	jwt.RegisteredClaims
}

// Issuer signs and parses session tokens with an HMAC secret.
type Issuer struct {
	secret []byte
}

// NewIssuer creates a new Issuer with the provided signing secret.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret)}
}

// Issue signs the session into a compact JWT. The session's ExpiresAt
// becomes the token's exp claim, so token validity and session validity
// are the same check.
func (g *Issuer) Issue(session *entity.Session) (string, error) {
	claims := sessionClaims{
		AccessType:  string(session.AccessType),
		Client:      session.Client,
		ClientIDs:   session.ClientIDs,
		CodeVersion: session.CodeVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a token string and reconstructs its session. Expired or
// tampered tokens yield ErrInvalidToken.
func (g *Issuer) Parse(tokenStr string) (*entity.Session, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	session := &entity.Session{
		AccessType:  entity.AccessType(claims.AccessType),
		Client:      claims.Client,
		ClientIDs:   claims.ClientIDs,
		CodeVersion: claims.CodeVersion,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
