// Package models содержит доменные структуры системы приёма заявок MEMORA:
// пользователей, словарные записи и анкеты подключения услуг.
package models

import "time"

// Роли пользователей системы. Роли admin и master открывают доступ
// к административным операциям.
const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleMaster = "master"
)

// User представляет учётную запись сотрудника.
//
// Вход в систему выполняется по комбинации кода организации (CompanyCode)
// и имени пользователя. Неактивные учётные записи не могут авторизоваться.
type User struct {
	UID          string    // Уникальный идентификатор пользователя
	Name         string    // Отображаемое имя
	Email        string    // Электронная почта (опционально)
	Username     string    // Имя пользователя, уникально в рамках организации
	CompanyCode  string    // Код организации, две цифры
	Phone        string    // Телефон (опционально)
	PasswordHash string    // Хэш пароля
	Role         string    // user, admin или master
	IsActive     bool      // Признак активности учётной записи
	CreatedAt    time.Time // Дата создания
}

// IsAdmin сообщает, даёт ли роль доступ к административным операциям.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleMaster
}

// DummyUser используется для приёма данных из JSON-запроса
// при создании пользователя администратором.
type DummyUser struct {
	Name        string `json:"name" validate:"required,min=2"`
	Email       string `json:"email" validate:"omitempty,email"`
	Username    string `json:"username" validate:"required,alphanum,min=4,max=20"`
	Password    string `json:"password" validate:"required,min=6"`
	CompanyCode string `json:"company_code" validate:"required,numeric,len=2"`
	Phone       string `json:"phone" validate:"omitempty,min=10"`
	Role        string `json:"role" validate:"required,oneof=user admin master"`
}

// DummyUserUpdate используется при редактировании пользователя администратором.
// Пароль через эту операцию не меняется.
type DummyUserUpdate struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"omitempty,min=10"`
	Role     string `json:"role" validate:"required,oneof=user admin master"`
	IsActive *bool  `json:"is_active" validate:"required"`
}
