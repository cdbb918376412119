package domain

const RoleAdmin = "ROLE_ADMIN"

// Session refleja las claves que quedan en el almacenamiento local tras el login.
type Session struct {
	Token      string
	Username   string
	Role       string
	IsLoggedIn bool
}

func (s Session) IsAdmin() bool { return s.IsLoggedIn && s.Role == RoleAdmin }

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Claves del almacenamiento local.
const (
	KeyCart       = "carrito"
	KeyToken      = "token"
	KeyUsername   = "username"
	KeyUsuario    = "usuario"
	KeyRole       = "role"
	KeyIsLoggedIn = "isLoggedIn"
)
