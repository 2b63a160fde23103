// Файл: internal/entities/user-entity.go
package entities

// User — пользователь целевой системы. Логин (username) является
// естественным ключом: по нему определяется, что пользователь уже существует.
type User struct {
	ID       int64  `json:"id" db:"id"`
	Login    string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Fio      string `json:"full_name" db:"full_name"`
	Role     string `json:"role" db:"role"`
	Phone    string `json:"phone" db:"phone"`
	Email    string `json:"email" db:"email"`
	IsActive bool   `json:"is_active" db:"is_active"`
}
