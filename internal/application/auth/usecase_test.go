package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Warrick-api/internal/application/auth"
	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/infrastructure/kvstore"
	"github.com/jhoicas/Warrick-api/pkg/jwt"
)

const testSecret = "test-secret"

var jwtCfg = auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "warrick"}

func newAuth(t *testing.T, users []entity.User) (*auth.AuthUseCase, *kvstore.Store) {
	t.Helper()
	store, err := kvstore.Open(context.Background(), kvstore.NewMemoryBackend(), users, nil)
	require.NoError(t, err)
	return auth.NewAuthUseCase(store.Users, jwtCfg, nil), store
}

func seededAdmin(t *testing.T) []entity.User {
	t.Helper()
	users, err := auth.SeedUsers(auth.AdminSeed{
		Username: "arvin_hanif",
		Password: "arvin_hanif",
		Name:     "Arvin Hanif",
		Mobile:   "01XXXXXXXXX",
		Email:    "arvin@warrick.io",
	})
	require.NoError(t, err)
	return users
}

func TestSeedUsers_UnAdminConHash(t *testing.T) {
	users := seededAdmin(t)
	require.Len(t, users, 1)
	u := users[0]
	assert.Equal(t, auth.SeedAdminID, u.ID)
	assert.Equal(t, entity.RoleAdmin, u.Role)
	assert.Empty(t, u.Password, "nunca se siembra texto plano")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("arvin_hanif")))

	_, err := auth.SeedUsers(auth.AdminSeed{Username: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_PorUsuarioMovilOEmail(t *testing.T) {
	uc, _ := newAuth(t, seededAdmin(t))
	ctx := context.Background()

	for _, id := range []string{"arvin_hanif", "01XXXXXXXXX", "arvin@warrick.io", "  arvin_hanif  "} {
		t.Run(id, func(t *testing.T) {
			out, err := uc.Login(ctx, dto.LoginRequest{Identifier: id, Password: "arvin_hanif"})
			require.NoError(t, err)
			assert.Equal(t, auth.SeedAdminID, out.User.ID)
			assert.Equal(t, entity.RoleAdmin, out.User.Role)

			claims, err := jwt.Parse(testSecret, out.Token)
			require.NoError(t, err)
			assert.Equal(t, auth.SeedAdminID, claims.UserID)
			assert.Equal(t, entity.RoleAdmin, claims.Role)
			assert.Equal(t, "warrick", claims.Issuer)
		})
	}
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuth(t, seededAdmin(t))
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Identifier: "arvin_hanif", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "nadie", Password: "arvin_hanif"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_UsernameRepetido_ProbaCadaCandidato(t *testing.T) {
	uc, _ := newAuth(t, seededAdmin(t))
	ctx := context.Background()

	_, err := uc.RegisterStaff(ctx, dto.StaffRequest{Name: "Otro Arvin", Username: "arvin_hanif", Password: "staff-pass"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Identifier: "arvin_hanif", Password: "staff-pass"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.User.Role)
}

func TestLogin_PasswordLegado_SeMigraAHash(t *testing.T) {
	legacy := []entity.User{{ID: "u1", Role: entity.RoleStaff, Name: "Salma", Username: "salma", Password: "plain"}}
	uc, store := newAuth(t, legacy)
	ctx := context.Background()

	_, err := uc.Login(ctx, dto.LoginRequest{Identifier: "salma", Password: "plain"})
	require.NoError(t, err)

	u, err := store.Users.GetByID(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Empty(t, u.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("plain")))

	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "salma", Password: "plain"})
	assert.NoError(t, err, "tras migrar sigue entrando con la misma contraseña")
}

func TestRegisterStaff(t *testing.T) {
	uc, store := newAuth(t, seededAdmin(t))
	ctx := context.Background()

	_, err := uc.RegisterStaff(ctx, dto.StaffRequest{Name: "Salma", Username: "salma"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "password obligatorio en el alta")

	out, err := uc.RegisterStaff(ctx, dto.StaffRequest{Name: " Salma ", Username: "salma", Password: "pw", Email: "salma@warrick.io"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleStaff, out.Role)
	assert.Equal(t, "Salma", out.Name)

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, auth.SeedAdminID, users[0].ID, "los usuarios se listan en orden de alta")

	stored, _ := store.Users.GetByID(ctx, out.ID)
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw", stored.PasswordHash)
}

func TestUpdateStaff_PasswordVacioConservaElActual(t *testing.T) {
	uc, _ := newAuth(t, seededAdmin(t))
	ctx := context.Background()
	created, err := uc.RegisterStaff(ctx, dto.StaffRequest{Name: "Salma", Username: "salma", Password: "pw"})
	require.NoError(t, err)

	upd, err := uc.UpdateStaff(ctx, created.ID, dto.StaffRequest{Name: "Salma K", Username: "salmak"})
	require.NoError(t, err)
	assert.Equal(t, "salmak", upd.Username)
	assert.Equal(t, entity.RoleStaff, upd.Role)

	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "salmak", Password: "pw"})
	require.NoError(t, err)

	_, err = uc.UpdateStaff(ctx, created.ID, dto.StaffRequest{Name: "Salma K", Username: "salmak", Password: "nueva"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Identifier: "salmak", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.UpdateStaff(ctx, "no-existe", dto.StaffRequest{Name: "x", Username: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteStaff(t *testing.T) {
	uc, _ := newAuth(t, seededAdmin(t))
	ctx := context.Background()
	created, err := uc.RegisterStaff(ctx, dto.StaffRequest{Name: "Salma", Username: "salma", Password: "pw"})
	require.NoError(t, err)

	assert.ErrorIs(t, uc.DeleteStaff(ctx, created.ID, false), domain.ErrConfirmationRequired)
	assert.ErrorIs(t, uc.DeleteStaff(ctx, auth.SeedAdminID, true), domain.ErrForbidden)
	assert.ErrorIs(t, uc.DeleteStaff(ctx, "no-existe", true), domain.ErrNotFound)
	require.NoError(t, uc.DeleteStaff(ctx, created.ID, true))

	users, err := uc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
