package rating

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/agendapro/internal/audit"
	domain "github.com/BruksfildServices01/agendapro/internal/domain/appointment"
	"github.com/BruksfildServices01/agendapro/internal/domain/company"
	"github.com/BruksfildServices01/agendapro/internal/domain/persistence"
	"github.com/BruksfildServices01/agendapro/internal/domain/rating"
	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/httperr"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

// ======================================================
// SUBMIT
// ======================================================

type SubmitInput struct {
	AppointmentID uint
	Score         int
	Comment       string
}

type SubmitRating struct {
	ratings      rating.Repository
	appointments domain.Repository
	audit        *audit.Dispatcher
}

func NewSubmitRating(
	ratings rating.Repository,
	appointments domain.Repository,
	audit *audit.Dispatcher,
) *SubmitRating {
	return &SubmitRating{
		ratings:      ratings,
		appointments: appointments,
		audit:        audit,
	}
}

func (uc *SubmitRating) Execute(ctx context.Context, actor user.Actor, in SubmitInput) (*models.Rating, error) {
	if !actor.IsClient() {
		return nil, httperr.ErrBusiness("forbidden")
	}
	if in.Score < 1 || in.Score > 5 {
		return nil, httperr.ErrBusiness("invalid_score")
	}

	ap, err := uc.appointments.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		if persistence.IsNotFound(err) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}
	if ap.ClientID != actor.UserID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if st, _ := domain.ParseStatus(ap.Status); st != domain.StatusCompleted {
		return nil, httperr.ErrBusiness("appointment_not_completed")
	}

	r := &models.Rating{
		AppointmentID: ap.ID,
		ClientID:      actor.UserID,
		CompanyID:     ap.CompanyID,
		Score:         in.Score,
		Comment:       strings.TrimSpace(in.Comment),
	}
	if err := uc.ratings.CreateRating(ctx, r); err != nil {
		if persistence.IsDuplicate(err) {
			return nil, httperr.ErrBusiness("rating_already_exists")
		}
		return nil, err
	}

	id := r.ID
	uc.audit.Dispatch(audit.Event{
		CompanyID: ap.CompanyID,
		UserID:    &actor.UserID,
		Action:    "rating_submitted",
		Entity:    "rating",
		EntityID:  &id,
		Metadata:  map[string]any{"nota": r.Score},
	})

	return r, nil
}

// ======================================================
// LIST
// ======================================================

type CompanyRatings struct {
	Ratings []models.Rating `json:"avaliacoes"`
	Summary rating.Summary  `json:"resumo"`
}

type ListCompanyRatings struct {
	ratings   rating.Repository
	companies company.Repository
}

func NewListCompanyRatings(ratings rating.Repository, companies company.Repository) *ListCompanyRatings {
	return &ListCompanyRatings{ratings: ratings, companies: companies}
}

func (uc *ListCompanyRatings) Execute(ctx context.Context, companyID uint) (*CompanyRatings, error) {
	if _, err := company.LoadActive(ctx, uc.companies, companyID); err != nil {
		return nil, err
	}

	list, err := uc.ratings.ListRatingsByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	return &CompanyRatings{
		Ratings: list,
		Summary: rating.Summarize(list),
	}, nil
}
