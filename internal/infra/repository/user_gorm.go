package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agendapro/internal/domain/user"
	"github.com/BruksfildServices01/agendapro/internal/models"
)

type UserGormRepository struct {
	base
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{base{db: db}}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.conn(ctx).Create(u).Error, "create user %s", u.Email)
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return translate(r.conn(ctx).Omit("Company").Save(u).Error, "update user %d", u.ID)
}

func (r *UserGormRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.conn(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "user %d", id)
	}
	return &u, nil
}

func (r *UserGormRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.conn(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err, "user %s", email)
	}
	return &u, nil
}

func (r *UserGormRepository) FindUsersByIdentifier(
	ctx context.Context,
	email string,
	digits string,
) ([]models.User, error) {

	users := []models.User{}
	if email == "" && digits == "" {
		return users, nil
	}

	q := r.conn(ctx)
	switch {
	case email != "":
		q = q.Where("email = ?", email)
	default:
		q = q.Where("telefone = ? OR cpf_cnpj = ?", digits, digits)
	}

	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "find users by identifier")
	}
	return users, nil
}

func (r *UserGormRepository) ListEmployees(ctx context.Context, companyID uint) ([]models.User, error) {
	users := []models.User{}
	if err := r.conn(ctx).
		Where("empresa_id = ? AND tipo = ? AND ativo = ?", companyID, models.RoleEmployee, true).
		Order("id ASC").
		Find(&users).Error; err != nil {
		return nil, translate(err, "list employees of %d", companyID)
	}
	return users, nil
}

var _ user.Repository = (*UserGormRepository)(nil)
