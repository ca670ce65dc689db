package entity

// Roles válidos para User.
const (
	RoleAdmin = "Admin"
	RoleStaff = "Staff"
)

// User representa una cuenta de acceso a la consola.
// PasswordHash guarda un hash bcrypt; los blobs antiguos pueden traer la contraseña
// en texto plano bajo "password" y se migran en el primer login exitoso.
type User struct {
	ID           string `json:"id"`
	Role         string `json:"role"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Password     string `json:"password,omitempty"` // legado: solo lectura de blobs antiguos
	Mobile       string `json:"mobile,omitempty"`
	Email        string `json:"email,omitempty"`
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
