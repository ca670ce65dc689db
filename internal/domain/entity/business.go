package entity

// BusinessInfo perfil del negocio emisor. Se copia en cada factura al guardarla.
type BusinessInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultBusiness perfil inicial cuando no hay uno persistido.
func DefaultBusiness() BusinessInfo {
	return BusinessInfo{
		Name:    "Warrick Studios",
		Email:   "billing@warrick.io",
		Phone:   "+880 1XXX-XXXXXX",
		Address: "Gulshan, Dhaka, Bangladesh",
	}
}

// Preferences preferencias de la consola.
type Preferences struct {
	DarkMode bool `json:"darkMode"`
}
