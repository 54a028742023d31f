package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/velaparedes/backrrhh-api/internal/application/auth"
	"github.com/velaparedes/backrrhh-api/internal/application/authz"
	"github.com/velaparedes/backrrhh-api/internal/application/dto"
	"github.com/velaparedes/backrrhh-api/internal/domain"
	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
	pkgjwt "github.com/velaparedes/backrrhh-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por DNI
	err   error                   // fallo de infraestructura simulado
}

func (f *fakeUserRepo) FindByDNI(_ context.Context, dni string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[dni], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeRBACRepo struct {
	systems     map[string]*entity.System
	assignments []entity.UserSystemRole
	permissions map[string][]entity.Permission // por roleID
	roles       map[string]*entity.Role
	err         error
}

func (f *fakeRBACRepo) GetSystemByID(_ context.Context, id string) (*entity.System, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.systems[id], nil
}

func (f *fakeRBACRepo) ListAssignmentsByUser(_ context.Context, userID string) ([]entity.UserSystemRole, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.UserSystemRole
	for _, a := range f.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeRBACRepo) ListPermissionsByRole(_ context.Context, roleID string) ([]entity.Permission, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.permissions[roleID], nil
}

func (f *fakeRBACRepo) GetRoleByID(_ context.Context, roleID string) (*entity.Role, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.roles[roleID], nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Setup
// ──────────────────────────────────────────────────────────────────────────────

const (
	testDNI      = "12345678"
	testPassword = "secreta-123"
	testUserID   = "u-1"
	testRoleID   = "r-1"
	testSystemID = "backrrhh"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func activeUser(t *testing.T) *entity.User {
	t.Helper()
	return &entity.User{
		ID:           testUserID,
		DNI:          testDNI,
		PasswordHash: hashPassword(t, testPassword),
		Name:         "Ana",
		Lastname:     "Pérez",
		Email:        "ana.perez@example.org",
		IsActive:     true,
	}
}

func newRBACRepo() *fakeRBACRepo {
	return &fakeRBACRepo{
		systems: map[string]*entity.System{
			testSystemID: {ID: testSystemID, Name: "Back RRHH", IsActive: true},
		},
		assignments: []entity.UserSystemRole{
			{UserID: testUserID, SystemID: testSystemID, RoleID: testRoleID, AssignedAt: time.Now()},
		},
		permissions: map[string][]entity.Permission{
			testRoleID: {
				{ID: "p-1", SystemID: testSystemID, Resource: "jobs", Action: "create"},
				{ID: "p-2", SystemID: testSystemID, Resource: "jobs", Action: "read"},
			},
		},
		roles: map[string]*entity.Role{
			testRoleID: {ID: testRoleID, SystemID: testSystemID, Name: "Especialista RRHH"},
		},
	}
}

func newUseCase(userRepo *fakeUserRepo, rbacRepo *fakeRBACRepo) *auth.UseCase {
	return auth.NewUseCase(userRepo, authz.NewResolver(rbacRepo), testSystemID, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "backrrhh-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesCorrectas(t *testing.T) {
	user := activeUser(t)
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: user}}, newRBACRepo())

	got, err := uc.Authenticate(context.Background(), testDNI, testPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, testDNI, got.DNI)
}

func TestAuthenticate_DNIInexistente(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{}}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), "99999999", testPassword)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Un usuario inactivo se rechaza aunque la contraseña sea la correcta, y el
// chequeo ocurre antes de comparar el hash.
func TestAuthenticate_UsuarioInactivo_RechazaConPasswordCorrecta(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: user}}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), testDNI, testPassword)
	assert.ErrorIs(t, err, domain.ErrInactiveUser)
}

func TestAuthenticate_UsuarioInactivo_RechazaConPasswordIncorrecta(t *testing.T) {
	user := activeUser(t)
	user.IsActive = false
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: user}}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), testDNI, "otra-password")
	assert.ErrorIs(t, err, domain.ErrInactiveUser,
		"el motivo no debe depender de si la contraseña hubiera sido válida")
}

func TestAuthenticate_PasswordIncorrecta(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: activeUser(t)}}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), testDNI, "password-equivocada")
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthenticate_EntradasVacias(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: activeUser(t)}}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), "", testPassword)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Authenticate(context.Background(), testDNI, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un fallo de infraestructura se propaga tal cual, nunca como rechazo de
// credenciales.
func TestAuthenticate_FalloDeInfraestructura_SePropaga(t *testing.T) {
	infraErr := errors.New("conexión rechazada")
	uc := newUseCase(&fakeUserRepo{err: infraErr}, newRBACRepo())

	_, err := uc.Authenticate(context.Background(), testDNI, testPassword)
	require.Error(t, err)
	assert.ErrorIs(t, err, infraErr)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
	assert.NotErrorIs(t, err, domain.ErrBadCredentials)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login (flujo completo)
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenConPermisosResueltos(t *testing.T) {
	uc := newUseCase(&fakeUserRepo{users: map[string]*entity.User{testDNI: activeUser(t)}}, newRBACRepo())

	out, err := uc.Login(context.Background(), dto.LoginRequest{DNI: testDNI, Password: testPassword})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)

	assert.Equal(t, testRoleID, out.User.RoleID)
	assert.Equal(t, "Especialista RRHH", out.User.RoleName)
	assert.Equal(t, []string{"create:jobs", "read:jobs"}, out.User.Permissions)

	claims, err := pkgjwt.Verify("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "Ana Pérez", claims.Name)
	assert.Equal(t, testDNI, claims.DNI)
	assert.Equal(t, testRoleID, claims.RoleID)
	assert.Equal(t, []string{"create:jobs", "read:jobs"}, claims.Permissions)
	assert.False(t, claims.HasPermission("delete:jobs"),
		"un permiso no otorgado debe denegarse")
}

func TestLogin_SinRolEnElSistema_ErrNotAssigned(t *testing.T) {
	rbac := newRBACRepo()
	rbac.systems["other-system"] = &entity.System{ID: "other-system", Name: "Otro", IsActive: true}
	uc := auth.NewUseCase(
		&fakeUserRepo{users: map[string]*entity.User{testDNI: activeUser(t)}},
		authz.NewResolver(rbac),
		"other-system",
		auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "backrrhh-test"},
	)

	_, err := uc.Login(context.Background(), dto.LoginRequest{DNI: testDNI, Password: testPassword})
	assert.ErrorIs(t, err, domain.ErrNotAssigned)
}
