package auth

import (
	"context"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type LoginInput struct {
	Identifier string
	Password   string
	Role       models.UserRole
}

type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type Login struct {
	users  user.Repository
	tokens *Tokens
}

func NewLogin(users user.Repository, tokens *Tokens) *Login {
	return &Login{users: users, tokens: tokens}
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// burnCompare spends one bcrypt comparison so unknown identifiers take as
// long as wrong passwords.
func burnCompare(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("agendapro:dummy"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// Execute authenticates by email, phone or CPF/CNPJ. Every failure is the
// same invalid_credentials error.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*Session, error) {
	email, digits := user.SplitIdentifier(in.Identifier)

	candidates, err := uc.users.FindUsersByIdentifier(ctx, email, digits)
	if err != nil {
		return nil, err
	}

	var match *models.User
	count := 0
	for i := range candidates {
		u := &candidates[i]
		if !u.Active || (in.Role != "" && u.Role != in.Role) {
			continue
		}
		match = u
		count++
	}

	if count != 1 || match.PasswordHash == "" {
		burnCompare(in.Password)
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(match.PasswordHash), []byte(in.Password)); err != nil {
		return nil, httperr.ErrBusiness("invalid_credentials")
	}

	token, err := uc.tokens.Issue(match)
	if err != nil {
		return nil, err
	}

	return &Session{User: match, Token: token}, nil
}
