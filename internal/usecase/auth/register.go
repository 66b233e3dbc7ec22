package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	TaxID    string
	Role     models.UserRole

	// Company only.
	Profile company.ProfilePatch
}

// directoryInvalidator drops cached company listings.
type directoryInvalidator interface {
	Invalidate(ctx context.Context)
}

type Register struct {
	tx          persistence.Transactor
	users       user.Repository
	companies   company.Repository
	tokens      *Tokens
	directory   directoryInvalidator
	audit       *audit.Dispatcher
	emailDomain func(string) bool
}

func NewRegister(
	tx persistence.Transactor,
	users user.Repository,
	companies company.Repository,
	tokens *Tokens,
	directory directoryInvalidator,
	audit *audit.Dispatcher,
	emailDomain func(string) bool,
) *Register {
	return &Register{
		tx:          tx,
		users:       users,
		companies:   companies,
		tokens:      tokens,
		directory:   directory,
		audit:       audit,
		emailDomain: emailDomain,
	}
}

// Execute creates a company (user plus profile, atomically) or a client.
// Employees are created by their company.
func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*Session, error) {
	if in.Role != models.RoleCompany && in.Role != models.RoleClient {
		return nil, httperr.ErrBusiness("invalid_role")
	}

	email := user.NormalizeEmail(in.Email)
	if uc.emailDomain != nil && !uc.emailDomain(email) {
		return nil, httperr.ErrBusiness("invalid_email_domain")
	}

	if in.TaxID != "" && !user.ValidTaxID(in.TaxID) {
		return nil, httperr.ErrBusiness("invalid_tax_id")
	}
	if in.Role == models.RoleCompany {
		if in.TaxID == "" {
			return nil, httperr.ErrBusiness("invalid_tax_id")
		}
		if err := in.Profile.Validate(); err != nil {
			return nil, err
		}
	}

	if !user.PasswordFits(in.Password) {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        user.Digits(in.Phone),
		TaxID:        user.Digits(in.TaxID),
		Role:         in.Role,
		Active:       true,
	}

	err = uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		existing, err := uc.users.GetUserByEmail(ctx, email)
		switch {
		case err == nil:
			if !claimable(existing, in.Role) {
				return httperr.ErrBusiness("email_already_exists")
			}
			claim(existing, u)
			u = existing
			return uc.users.UpdateUser(ctx, u)
		case !persistence.IsNotFound(err):
			return err
		}

		if err := uc.users.CreateUser(ctx, u); err != nil {
			if persistence.IsDuplicate(err) {
				return httperr.ErrBusiness("email_already_exists")
			}
			return err
		}

		if u.Role != models.RoleCompany {
			return nil
		}

		profile := &models.CompanyProfile{UserID: u.ID, Active: true}
		in.Profile.Apply(profile)
		return uc.companies.CreateCompanyProfile(ctx, profile)
	})
	if err != nil {
		return nil, err
	}

	if u.Role == models.RoleCompany {
		uc.directory.Invalidate(ctx)
		uc.audit.Dispatch(audit.Event{
			CompanyID: u.ID,
			UserID:    &u.ID,
			Action:    "company_registered",
			Entity:    "user",
			EntityID:  &u.ID,
		})
	}

	token, err := uc.tokens.Issue(u)
	if err != nil {
		return nil, err
	}

	return &Session{User: u, Token: token}, nil
}

// claimable reports whether a client row created by a guest booking can be
// taken over by a client registering with the same email.
func claimable(existing *models.User, role models.UserRole) bool {
	return role == models.RoleClient &&
		existing.Role == models.RoleClient &&
		existing.PasswordHash == ""
}

func claim(guest, reg *models.User) {
	guest.PasswordHash = reg.PasswordHash
	guest.Active = true
	if reg.Name != "" {
		guest.Name = reg.Name
	}
	if reg.Phone != "" {
		guest.Phone = reg.Phone
	}
	if reg.TaxID != "" {
		guest.TaxID = reg.TaxID
	}
}
