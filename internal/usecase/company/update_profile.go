package company

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/imaging"
	"github.com/BruksfildServices01/agendapro/internal/storage"
)

type UpdateProfileInput struct {
	Name  *string
	Phone *string

	Profile company.ProfilePatch
}

type UpdateProfile struct {
	tx        persistence.Transactor
	users     user.Repository
	companies company.Repository
	directory *Directory
	audit     *audit.Dispatcher
}

func NewUpdateProfile(
	tx persistence.Transactor,
	users user.Repository,
	companies company.Repository,
	directory *Directory,
	audit *audit.Dispatcher,
) *UpdateProfile {
	return &UpdateProfile{
		tx:        tx,
		users:     users,
		companies: companies,
		directory: directory,
		audit:     audit,
	}
}

func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actor user.Actor,
	in UpdateProfileInput,
) (*Detail, error) {

	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if err := in.Profile.Validate(); err != nil {
		return nil, err
	}

	var updated *Detail
	err := uc.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := company.LoadActive(ctx, uc.companies, actor.UserID)
		if err != nil {
			return err
		}

		if in.Name != nil || in.Phone != nil {
			u := p.User
			if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
				u.Name = strings.TrimSpace(*in.Name)
			}
			if in.Phone != nil {
				u.Phone = user.Digits(*in.Phone)
			}
			if err := uc.users.UpdateUser(ctx, &u); err != nil {
				return err
			}
			p.User = u
		}

		in.Profile.Apply(p)
		if err := uc.companies.UpdateCompanyProfile(ctx, p); err != nil {
			return err
		}

		updated = detailOf(p)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.directory.Invalidate(ctx)
	uc.audit.Dispatch(audit.Event{
		CompanyID: actor.UserID,
		UserID:    &actor.UserID,
		Action:    "company_profile_updated",
		Entity:    "empresa",
		EntityID:  &actor.UserID,
	})

	return updated, nil
}

// ======================================================
// LOGO
// ======================================================

type UploadLogo struct {
	companies company.Repository
	storage   storage.Driver
	audit     *audit.Dispatcher
}

func NewUploadLogo(
	companies company.Repository,
	storage storage.Driver,
	audit *audit.Dispatcher,
) *UploadLogo {
	return &UploadLogo{
		companies: companies,
		storage:   storage,
		audit:     audit,
	}
}

// Execute re-encodes the image to a WebP square logo and points the profile
// at it.
func (uc *UploadLogo) Execute(ctx context.Context, actor user.Actor, r io.Reader) (*Detail, error) {
	if !actor.IsCompany() {
		return nil, httperr.ErrBusiness("forbidden")
	}

	p, err := company.LoadActive(ctx, uc.companies, actor.UserID)
	if err != nil {
		return nil, err
	}

	raw, err := io.ReadAll(io.LimitReader(r, imaging.MaxUploadBytes+1))
	if err != nil {
		return nil, errors.Wrap(err, "read logo")
	}
	if len(raw) > imaging.MaxUploadBytes {
		return nil, httperr.ErrBusiness("image_too_large")
	}

	logo, err := imaging.ToWebPLogo(bytes.NewReader(raw))
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupported) {
			return nil, httperr.ErrBusiness("invalid_image")
		}
		return nil, err
	}

	path := fmt.Sprintf("logos/%d/%s.webp", p.UserID, uuid.NewString())
	url, err := uc.storage.Upload(ctx, bytes.NewReader(logo), path, imaging.ContentType)
	if err != nil {
		return nil, err
	}

	p.LogoURL = url
	if err := uc.companies.UpdateCompanyProfile(ctx, p); err != nil {
		_ = uc.storage.Delete(ctx, path)
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		CompanyID: p.UserID,
		UserID:    &actor.UserID,
		Action:    "company_logo_uploaded",
		Entity:    "empresa",
		EntityID:  &p.UserID,
		Metadata:  map[string]any{"logo_url": url},
	})

	return detailOf(p), nil
}
