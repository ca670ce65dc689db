package entity

import "time"

// Customer representa un cliente del negocio.
// Phone es la clave de deduplicación (ver identity.NormalizePhone).
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
