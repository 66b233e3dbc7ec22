package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// Claims is the session payload. CompanyID is the company the user acts for:
// itself for companies, the parent for employees, zero for clients.
type Claims struct {
	UserID    uint   `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"tipo"`
	CompanyID uint   `json:"empresaId,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Actor() user.Actor {
	return user.Actor{
		UserID:    c.UserID,
		Email:     c.Email,
		Role:      models.UserRole(c.Role),
		CompanyID: c.CompanyID,
	}
}

// Tokens issues and verifies HS256 session tokens.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (t *Tokens) Issue(u *models.User) (string, error) {
	now := t.now()

	claims := Claims{
		UserID:    u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		CompanyID: u.ScopeCompanyID(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(u.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

func (t *Tokens) Parse(raw string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(
		raw,
		claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
