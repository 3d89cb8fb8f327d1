package domain

// UserRole представляет роль пользователя в системе
type UserRole string

const (
	RoleTechnician     UserRole = "technician"     // Техник - проводит осмотры
	RoleReceptionist   UserRole = "receptionist"   // Рецепционист - управляет записями
	RoleAdministrative UserRole = "administrative" // Административный персонал
	RoleRegulatory     UserRole = "regulatory"     // Регулирующий орган - просмотр истории
	RoleOwner          UserRole = "owner"          // Владелец автомобиля
)

// AllRoles возвращает закрытый набор всех ролей системы
// Решения по контролю доступа перебирают именно этот набор,
// чтобы новая роль не осталась необработанной
func AllRoles() []UserRole {
	return []UserRole{
		RoleTechnician,
		RoleReceptionist,
		RoleAdministrative,
		RoleRegulatory,
		RoleOwner,
	}
}

// IsValid проверяет, что роль входит в закрытый набор
func (r UserRole) IsValid() bool {
	switch r {
	case RoleTechnician, RoleReceptionist, RoleAdministrative, RoleRegulatory, RoleOwner:
		return true
	}
	return false
}

// User - сессионный пользователь системы
// Учетные записи фиксированы (статический список), регистрации нет
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"` // Никогда не возвращаем в JSON и не пишем в хранилище
}

// IsTechnician проверяет, является ли пользователь техником
func (u *User) IsTechnician() bool {
	return u.Role == RoleTechnician
}

// CanManageAppointments проверяет, может ли пользователь управлять записями на осмотр
func (u *User) CanManageAppointments() bool {
	return u.Role == RoleReceptionist || u.Role == RoleAdministrative
}

// Validate проверяет корректность данных пользователя
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidUserData
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}
