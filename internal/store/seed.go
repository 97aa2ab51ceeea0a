package store

import (
	"time"

	"github.com/magabrotheeeer/coach-connect/internal/models"
)

// seed заполняет коллекции начальными данными. Вызывается под мьютексом
// (или до публикации хранилища). Задачи датируются текущим днём, чтобы
// демонстрационные данные всегда попадали в выборку "на сегодня".
func (s *Store) seed() {
	now := s.now()
	today := now.Format("2006-01-02")
	stamp := now.Format(timeLayout)

	s.providers = []models.Provider{
		{
			ID:                "p1",
			FullName:          "Ahmed Hassan",
			Role:              models.RoleCoach,
			Title:             "Fitness Coach",
			YearsOfExperience: 5,
			Languages:         []string{"EN", "AR"},
			Specialties:       []string{"weight loss", "strength"},
			PricePerMonth:     1200,
			Currency:          "EGP",
		},
		{
			ID:                "p2",
			FullName:          "Sara Ali",
			Role:              models.RoleNutritionist,
			Title:             "Clinical Nutritionist",
			YearsOfExperience: 7,
			Languages:         []string{"AR"},
			Specialties:       []string{"diabetes", "weight management"},
			PricePerMonth:     900,
			Currency:          "EGP",
		},
		{
			ID:                "p3",
			FullName:          "John Doe",
			Role:              models.RoleCoach,
			Title:             "Online Personal Trainer",
			YearsOfExperience: 3,
			Languages:         []string{"EN"},
			Specialties:       []string{"muscle gain"},
			PricePerMonth:     1000,
			Currency:          "EGP",
		},
	}

	s.packages = []models.Package{
		{
			ID:             "pack1",
			ProviderID:     "p1",
			Title:          "4 Weeks Fat Loss",
			Description:    "Custom workouts + weekly check-ins.",
			Price:          800,
			Currency:       "EGP",
			DurationInDays: 28,
		},
		{
			ID:             "pack2",
			ProviderID:     "p1",
			Title:          "12 Weeks Transformation",
			Description:    "Full plan, nutrition guidance and chat support.",
			Price:          2200,
			Currency:       "EGP",
			DurationInDays: 84,
		},
		{
			ID:             "pack3",
			ProviderID:     "p2",
			Title:          "Nutrition Plan (1 month)",
			Description:    "Meal plan + adjustments every week.",
			Price:          900,
			Currency:       "EGP",
			DurationInDays: 30,
		},
		{
			ID:             "pack4",
			ProviderID:     "p3",
			Title:          "Muscle Gain Coaching",
			Description:    "Hypertrophy program, weekly updates.",
			Price:          1000,
			Currency:       "EGP",
			DurationInDays: 30,
		},
	}

	s.tasks = []models.Task{
		{
			ID:          "t1",
			ProviderID:  "p1",
			Title:       "Morning workout",
			Description: "30 min cardio + stretching",
			Date:        today,
			Status:      models.TaskStatusPending,
		},
		{
			ID:          "t2",
			ProviderID:  "p1",
			Title:       "Evening workout",
			Description: "Upper body strength session",
			Date:        today,
			Status:      models.TaskStatusPending,
		},
		{
			ID:          "t3",
			ProviderID:  "p2",
			Title:       "Log today meals",
			Description: "Send photos of breakfast, lunch, dinner",
			Date:        today,
			Status:      models.TaskStatusPending,
		},
	}

	s.subscriptions = []models.Subscription{}

	s.chats = []models.Chat{
		{
			ID:            "chat1",
			ClientID:      "demo_client",
			ProviderID:    "p1",
			LastMessage:   "See you tomorrow at the gym!",
			LastMessageAt: stamp,
		},
		{
			ID:            "chat2",
			ClientID:      "demo_client",
			ProviderID:    "p2",
			LastMessage:   "Please send your meals photos.",
			LastMessageAt: stamp,
		},
	}

	s.messages = []models.Message{
		{
			ID:        "m1",
			ChatID:    "chat1",
			SenderID:  "p1",
			Kind:      models.MessageKindText,
			Text:      "Hi, how was your workout today?",
			CreatedAt: now.Add(-2 * time.Minute).Format(timeLayout),
		},
		{
			ID:        "m2",
			ChatID:    "chat1",
			SenderID:  "demo_client",
			Kind:      models.MessageKindText,
			Text:      "It was great, I finished all sets.",
			CreatedAt: now.Add(-time.Minute).Format(timeLayout),
		},
		{
			ID:        "m3",
			ChatID:    "chat2",
			SenderID:  "p2",
			Kind:      models.MessageKindText,
			Text:      "Remember to drink enough water.",
			CreatedAt: stamp,
		},
	}
}
