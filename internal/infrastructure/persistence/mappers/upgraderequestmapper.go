package mappers

import (
	"quickdesk/internal/domain/upgrade"
	"quickdesk/internal/infrastructure/persistence/models"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/biztime"
)

type UpgradeRequestMapper interface {
	ToModel(r *upgrade.Request) *models.UpgradeRequestModel
	RowToDomain(row *models.UpgradeRequestRow) (*upgrade.Request, error)
}

type UpgradeRequestMapperImpl struct{}

func NewUpgradeRequestMapper() UpgradeRequestMapper {
	return &UpgradeRequestMapperImpl{}
}

func (m *UpgradeRequestMapperImpl) ToModel(r *upgrade.Request) *models.UpgradeRequestModel {
	return &models.UpgradeRequestModel{
		ID:            r.ID(),
		UserID:        r.UserID(),
		CurrentRole:   r.CurrentRole().String(),
		RequestedRole: r.RequestedRole().String(),
		Status:        r.Status().String(),
		ResolvedBy:    r.ResolvedBy(),
		CreatedAt:     biztime.ToMilli(r.CreatedAt()),
		UpdatedAt:     biztime.ToMilli(r.UpdatedAt()),
	}
}

func (m *UpgradeRequestMapperImpl) RowToDomain(row *models.UpgradeRequestRow) (*upgrade.Request, error) {
	var requester *upgrade.Requester
	if row.RequesterEmail != "" {
		requester = &upgrade.Requester{Name: row.RequesterName, Email: row.RequesterEmail}
	}
	return upgrade.ReconstructRequest(
		row.ID,
		row.UserID,
		authorization.UserRole(row.CurrentRole),
		authorization.UserRole(row.RequestedRole),
		upgrade.Status(row.Status),
		row.ResolvedBy,
		biztime.FromMilli(row.CreatedAt),
		biztime.FromMilli(row.UpdatedAt),
		requester,
	)
}
