package mappers

import (
	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

// UserMapper handles the conversion between User entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ToDomainList(list []models.UserModel) ([]*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Gender:       u.Gender(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Category:     u.Category(),
		Role:         u.Role().String(),
		CreatedAt:    biztime.ToMilli(u.CreatedAt()),
		UpdatedAt:    biztime.ToMilli(u.UpdatedAt()),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Gender,
		model.Email,
		model.PasswordHash,
		model.Category,
		authorization.UserRole(model.Role),
		biztime.FromMilli(model.CreatedAt),
		biztime.FromMilli(model.UpdatedAt),
	)
}

func (m *UserMapperImpl) ToDomainList(list []models.UserModel) ([]*user.User, error) {
	users := make([]*user.User, 0, len(list))
	for i := range list {
		u, err := m.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}
