package domain

// RoleAdmin — единственная роль, дающая доступ к админским маршрутам.
const RoleAdmin = "admin"

// User — пользователь магазина, email является естественным ключом.
type User struct {
	Email     string
	Name      string
	Role      string
	Phone     string
	Address   string
	Education string
	Image     string
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserProfile — поля, которые пользователь может менять сам. Роль сюда не входит.
type UserProfile struct {
	Name      string
	Phone     string
	Address   string
	Education string
	Image     string
}

// Identity — личность вызывающего, извлечённая из bearer-токена.
type Identity struct {
	Email string
}
