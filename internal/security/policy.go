package security

import (
	"github.com/Kumarsatwik/evaluv/internal/apperrors"
	"github.com/Kumarsatwik/evaluv/internal/model"
)

// Policy-проверки — чистые функции над Claims, вызываются каждой
// защищенной операцией после gate-а. Gate лишь обогащает запрос
// identity, обязательность доступа решается здесь.

// RequireAuthenticated требует наличия identity.
func RequireAuthenticated(claims *Claims) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}

// RequireRole требует конкретную роль.
func RequireRole(claims *Claims, role string) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if claims.Role != role {
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireSelfOrAdmin разрешает операцию администратору либо
// самому пользователю над собой.
func RequireSelfOrAdmin(claims *Claims, targetUUID string) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if claims.Role != model.RoleAdmin && claims.UserUUID != targetUUID {
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireOwnerOrAdmin разрешает мутацию ресурса его владельцу
// либо администратору.
func RequireOwnerOrAdmin(claims *Claims, resourceOwnerUUID string) error {
	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if claims.Role != model.RoleAdmin && claims.UserUUID != resourceOwnerUUID {
		return apperrors.ErrForbidden
	}
	return nil
}
