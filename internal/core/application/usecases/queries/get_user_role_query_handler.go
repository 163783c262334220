package queries

import (
	"context"

	"parcelhub/internal/core/domain/model/user"
	"parcelhub/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetUserRoleQueryHandler struct {
	db *gorm.DB
}

func NewGetUserRoleQueryHandler(db *gorm.DB) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{db: db}
}

// Handle returns the account's role, or an ObjectNotFoundError when the
// e-mail never logged in.
func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (user.Role, error) {
	if err := query.Validate(); err != nil {
		return user.RoleUnknown, err
	}

	var roles []int
	err := h.db.WithContext(ctx).
		Table("users").
		Where("email = ?", query.Email().String()).
		Limit(1).
		Pluck("role", &roles).Error
	if err != nil {
		return user.RoleUnknown, err
	}
	if len(roles) == 0 {
		return user.RoleUnknown, errs.NewObjectNotFoundError("email", query.Email())
	}
	return user.Role(roles[0]), nil
}
