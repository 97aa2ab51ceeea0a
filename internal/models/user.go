// Package models содержит доменные структуры приложения: пользователей,
// поставщиков услуг (тренеров и нутрициологов), пакеты, подписки, задачи и чаты,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

// Роли пользователей в системе.
const (
	RoleClient       = "client"
	RoleCoach        = "coach"
	RoleNutritionist = "nutritionist"
)

// CurrentUser представляет пользователя текущей сессии.
// Поля Title, YearsOfExperience, Languages и Specialties заполняются
// только для поставщиков услуг (coach, nutritionist).
type CurrentUser struct {
	ID                string   // Уникальный идентификатор пользователя
	Role              string   // Роль: client, coach или nutritionist
	FullName          string   // Полное имя
	Email             string   // Электронная почта
	Phone             string   // Телефон (опционально)
	Age               int      // Возраст (опционально)
	Title             string   // Должность поставщика услуг
	YearsOfExperience int      // Стаж в годах
	Languages         []string // Языки общения
	Specialties       []string // Специализации
}

// IsProvider сообщает, является ли пользователь поставщиком услуг.
func (u *CurrentUser) IsProvider() bool {
	return u.Role == RoleCoach || u.Role == RoleNutritionist
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса
// до их валидации и преобразования в CurrentUser.
type DummyRegister struct {
	FullName          string   `json:"full_name" validate:"required"`                              // Полное имя
	Email             string   `json:"email" validate:"required,email"`                            // Электронная почта
	Password          string   `json:"password" validate:"required,min=8"`                         // Пароль (минимум 8 символов)
	Role              string   `json:"role" validate:"required,oneof=client coach nutritionist"`   // Роль пользователя
	Phone             string   `json:"phone,omitempty" validate:"omitempty"`                       // Телефон (опционально)
	Age               int      `json:"age,omitempty" validate:"omitempty,gt=0"`                    // Возраст (опционально)
	Title             string   `json:"title,omitempty" validate:"omitempty"`                       // Должность (для поставщиков)
	YearsOfExperience int      `json:"years_of_experience,omitempty" validate:"omitempty,gte=0"`   // Стаж (для поставщиков)
	Languages         []string `json:"languages,omitempty" validate:"omitempty"`                   // Языки (для поставщиков)
	Specialties       []string `json:"specialties,omitempty" validate:"omitempty"`                 // Специализации (для поставщиков)
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Password string `json:"password" validate:"required"`    // Пароль
}
