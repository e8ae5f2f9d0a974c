package usecase

import (
	"bookloop/internal/pkg/jwt"

	"github.com/google/uuid"
)

// IdentityProvider resolves a bearer token issued by the external identity
// service into a caller ID.
type IdentityProvider interface {
	Authenticate(token string) (uuid.UUID, error)
}

type jwtIdentityProvider struct {
	jwtService *jwt.Service
}

func NewIdentityProvider(jwtService *jwt.Service) IdentityProvider {
	return &jwtIdentityProvider{
		jwtService: jwtService,
	}
}

func (p *jwtIdentityProvider) Authenticate(token string) (uuid.UUID, error) {
	claims, err := p.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, err
	}
	return claims.UserID, nil
}
