package dto

// StaffRequest alta o edición de un usuario Staff (password en texto, se hashea en use case).
// En edición un password vacío conserva el actual.
type StaffRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password,omitempty" validate:"max=200"`
	Mobile   string `json:"mobile,omitempty" validate:"max=40"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Mobile   string `json:"mobile,omitempty"`
	Email    string `json:"email,omitempty"`
}

// LoginRequest entrada para login: username, móvil o email más password.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// BusinessRequest body para PUT /api/business.
type BusinessRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone" validate:"max=40"`
	Address string `json:"address" validate:"max=500"`
}

// BusinessResponse perfil del negocio.
type BusinessResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PreferencesDTO preferencias de la consola.
type PreferencesDTO struct {
	DarkMode bool `json:"darkMode"`
}
