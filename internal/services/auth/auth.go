// Package auth содержит бизнес-логику регистрации и входа пользователей.
//
// Учётные записи живут в памяти процесса вместе с остальным состоянием:
// хранилище доверяет сервису форму пользователя и не перепроверяет её.
package auth

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	jwtlib "github.com/magabrotheeeer/coach-connect/internal/lib/jwt"
	"github.com/magabrotheeeer/coach-connect/internal/lib/password"
	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// Ошибки сервиса аутентификации.
var (
	// ErrEmailTaken — пользователь с такой почтой уже зарегистрирован.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials — неверная пара почта-пароль.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store описывает используемые сервисом операции хранилища.
type Store interface {
	// SetCurrentUser заменяет пользователя текущей сессии.
	SetCurrentUser(user *models.CurrentUser)
}

type account struct {
	user         models.CurrentUser
	passwordHash string
}

// Service реализует регистрацию, вход и выход пользователей,
// выдавая JWT токены для HTTP-коллабораторов.
type Service struct {
	store Store
	maker jwtlib.Maker
	log   *slog.Logger

	mu       sync.Mutex
	accounts map[string]account // по электронной почте
}

// New создает новый Service. Демонстрационный клиент demo_client
// регистрируется сразу, чтобы начальные чаты были доступны после входа.
func New(store Store, maker jwtlib.Maker, log *slog.Logger) *Service {
	s := &Service{
		store:    store,
		maker:    maker,
		log:      log,
		accounts: make(map[string]account),
	}

	hash, err := password.GetHash("demo-password")
	if err == nil {
		s.accounts["demo@coachconnect.app"] = account{
			user: models.CurrentUser{
				ID:       "demo_client",
				Role:     models.RoleClient,
				FullName: "Demo Client",
				Email:    "demo@coachconnect.app",
			},
			passwordHash: hash,
		}
	}
	return s
}

// Register создает учётную запись, открывает сессию и возвращает токен
// вместе с созданным пользователем.
func (s *Service) Register(req models.DummyRegister) (string, models.CurrentUser, error) {
	const op = "services.auth.Register"

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, err)
	}

	user := models.CurrentUser{
		ID:                uuid.NewString(),
		Role:              req.Role,
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Age:               req.Age,
		Title:             req.Title,
		YearsOfExperience: req.YearsOfExperience,
		Languages:         req.Languages,
		Specialties:       req.Specialties,
	}

	s.mu.Lock()
	if _, exists := s.accounts[req.Email]; exists {
		s.mu.Unlock()
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, ErrEmailTaken)
	}
	s.accounts[req.Email] = account{user: user, passwordHash: hash}
	s.mu.Unlock()

	s.store.SetCurrentUser(&user)
	s.log.Info("user registered",
		slog.String("id", user.ID), slog.String("role", user.Role))

	token, err := s.maker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Login проверяет пару почта-пароль, открывает сессию и возвращает токен.
func (s *Service) Login(req models.DummyLogin) (string, models.CurrentUser, error) {
	const op = "services.auth.Login"

	s.mu.Lock()
	acc, exists := s.accounts[req.Email]
	s.mu.Unlock()
	if !exists {
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}
	if err := password.CompareHash(acc.passwordHash, req.Password); err != nil {
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user := acc.user
	s.store.SetCurrentUser(&user)
	s.log.Info("user logged in", slog.String("id", user.ID))

	token, err := s.maker.GenerateToken(user.ID, user.Role)
	if err != nil {
		return "", models.CurrentUser{}, fmt.Errorf("%s: %w", op, err)
	}
	return token, user, nil
}

// Logout закрывает текущую сессию.
func (s *Service) Logout() {
	s.store.SetCurrentUser(nil)
	s.log.Info("user logged out")
}
