package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Warrick-api/internal/application/dto"
	"github.com/jhoicas/Warrick-api/internal/domain"
	"github.com/jhoicas/Warrick-api/internal/domain/entity"
	"github.com/jhoicas/Warrick-api/internal/domain/repository"
	"github.com/jhoicas/Warrick-api/pkg/jwt"
	"github.com/jhoicas/Warrick-api/pkg/logger"
)

// SeedAdminID ID fijo del administrador sembrado en el primer arranque.
const SeedAdminID = "admin-01"

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AdminSeed datos del administrador inicial.
type AdminSeed struct {
	Username string
	Password string
	Name     string
	Mobile   string
	Email    string
}

// SeedUsers construye la colección inicial de usuarios: exactamente un Admin con la
// contraseña hasheada.
func SeedUsers(seed AdminSeed) ([]entity.User, error) {
	if seed.Username == "" || seed.Password == "" {
		return nil, fmt.Errorf("%w: usuario y contraseña del admin inicial son obligatorios", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := seed.Name
	if name == "" {
		name = seed.Username
	}
	return []entity.User{{
		ID:           SeedAdminID,
		Role:         entity.RoleAdmin,
		Name:         name,
		Username:     seed.Username,
		PasswordHash: string(hash),
		Mobile:       seed.Mobile,
		Email:        seed.Email,
	}}, nil
}

// AuthUseCase casos de uso de autenticación y gestión de personal.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica identificador (username, móvil o email) y password; genera JWT.
// Una contraseña legada en texto plano se acepta y se rehashea tras el login.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	candidates, err := uc.userRepo.FindByIdentifier(ctx, in.Identifier)
	if err != nil {
		return nil, err
	}
	for _, user := range candidates {
		ok, legacy := checkPassword(user, in.Password)
		if !ok {
			continue
		}
		if legacy {
			uc.migratePassword(ctx, user, in.Password)
		}
		token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
		if err != nil {
			return nil, err
		}
		return &dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
	}
	return nil, domain.ErrUnauthorized
}

// ListUsers lista todos los usuarios en orden de alta.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// RegisterStaff da de alta un usuario con rol Staff (nombre, usuario y password obligatorios).
func (uc *AuthUseCase) RegisterStaff(ctx context.Context, in dto.StaffRequest) (*dto.UserResponse, error) {
	in = trimStaff(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Password == "" {
		return nil, fmt.Errorf("%w: password es obligatorio", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := entity.User{
		ID:           uuid.New().String(),
		Role:         entity.RoleStaff,
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Mobile:       in.Mobile,
		Email:        in.Email,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("staff registrado")
	out := dto.NewUserResponse(user)
	return &out, nil
}

// UpdateStaff edita datos de un usuario. El rol no cambia; password vacío conserva el actual.
func (uc *AuthUseCase) UpdateStaff(ctx context.Context, id string, in dto.StaffRequest) (*dto.UserResponse, error) {
	in = trimStaff(in)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Name = in.Name
	user.Username = in.Username
	user.Mobile = in.Mobile
	user.Email = in.Email
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
		user.Password = ""
	}
	if err := uc.userRepo.Update(ctx, *user); err != nil {
		return nil, err
	}
	out := dto.NewUserResponse(*user)
	return &out, nil
}

// DeleteStaff elimina un usuario. Requiere confirmación; los Admin no se pueden eliminar.
func (uc *AuthUseCase) DeleteStaff(ctx context.Context, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if user.IsAdmin() {
		return fmt.Errorf("%w: no se puede eliminar un administrador", domain.ErrForbidden)
	}
	return uc.userRepo.Delete(ctx, id)
}

// checkPassword valida contra el hash bcrypt o, en blobs antiguos, contra el texto plano.
func checkPassword(u entity.User, password string) (ok, legacy bool) {
	if u.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil, false
	}
	if u.Password != "" && u.Password == password {
		return true, true
	}
	return false, false
}

func (uc *AuthUseCase) migratePassword(ctx context.Context, u entity.User, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo hashear password legado")
		return
	}
	u.PasswordHash = string(hash)
	u.Password = ""
	if err := uc.userRepo.Update(ctx, u); err != nil {
		uc.log.Warn().Err(err).Str("user_id", u.ID).Msg("no se pudo migrar password legado")
	}
}

func trimStaff(in dto.StaffRequest) dto.StaffRequest {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Email = strings.TrimSpace(in.Email)
	return in
}
