package usecase

import (
	"campus-reserve/internal/domain/user"
	"campus-reserve/internal/pkg/jwt"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (user.Requester, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (user.Requester, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return user.Anonymous(), err
	}

	email, err := user.NewEmail(claims.Email)
	if err != nil {
		return user.Anonymous(), err
	}

	role := user.RoleStudent
	if claims.Role != "" {
		if role, err = user.NewRole(claims.Role); err != nil {
			return user.Anonymous(), err
		}
	}

	return user.NewRequester(claims.UserID, email, role)
}
