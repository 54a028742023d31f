package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/velaparedes/backrrhh-api/internal/application/authz"
	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	"github.com/velaparedes/backrrhh-api/internal/domain/repository"
	"github.com/velaparedes/backrrhh-api/pkg/jwt"
)

// dummyHash es un hash bcrypt de una cadena aleatoria descartada. Cuando el
// DNI no existe se compara la contraseña contra este hash para que la rama
// "usuario inexistente" tarde lo mismo que "contraseña incorrecta".
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// JWTConfig configuración para emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase caso de uso de autenticación: verificación de credenciales y login
// (credenciales → resolución de módulo → emisión de token).
type UseCase struct {
	userRepo repository.UserRepository
	resolver *authz.Resolver
	systemID string
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth. systemID es el módulo que
// sirve este despliegue; el login solo emite tokens para ese sistema.
func NewUseCase(userRepo repository.UserRepository, resolver *authz.Resolver, systemID string, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, resolver: resolver, systemID: systemID, jwtCfg: jwtCfg}
}

// Authenticate verifica el par DNI/contraseña contra el almacén de
// credenciales. Orden de chequeos:
//
//  1. usuario inexistente → ErrUserNotFound (tras un compare dummy)
//  2. usuario inactivo → ErrInactiveUser, ANTES de comparar la contraseña,
//     para no revelar si la contraseña de una cuenta deshabilitada era válida
//  3. contraseña incorrecta → ErrBadCredentials
//
// Un error de infraestructura del repositorio se propaga tal cual: nunca se
// enmascara como rechazo de credenciales.
func (uc *UseCase) Authenticate(ctx context.Context, dni, password string) (*entity.User, error) {
	if dni == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, domain.ErrUserNotFound
	}
	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

// Login ejecuta el flujo completo: autentica, resuelve el acceso al módulo
// configurado y emite el token de sesión con el set de permisos aplanado.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(ctx, in.DNI, in.Password)
	if err != nil {
		return nil, err
	}
	access, err := uc.resolver.ResolveForSystem(ctx, user.ID, uc.systemID)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Issue(
		uc.jwtCfg.Secret,
		user.ID, user.DisplayName(), user.DNI,
		access.RoleID, access.Permissions,
		uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes,
	)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.SessionUser{
			ID:          user.ID,
			DNI:         user.DNI,
			Name:        user.Name,
			Lastname:    user.Lastname,
			Email:       user.Email,
			RoleID:      access.RoleID,
			RoleName:    access.RoleName,
			Permissions: access.Permissions,
		},
	}, nil
}
