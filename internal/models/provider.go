package models

// Provider представляет поставщика услуг — тренера или нутрициолога,
// предлагающего клиентам пакеты услуг. Роль фиксируется при создании.
type Provider struct {
	ID                string   // Уникальный идентификатор
	FullName          string   // Полное имя
	Role              string   // Роль: coach или nutritionist
	Title             string   // Должность, например "Fitness Coach"
	YearsOfExperience int      // Стаж в годах
	Languages         []string // Языки общения
	Specialties       []string // Специализации
	PricePerMonth     int      // Цена за месяц работы
	Currency          string   // Валюта цены
}

// Package представляет покупаемый пакет услуг, принадлежащий ровно
// одному поставщику. ProviderID всегда ссылается на существующего Provider.
type Package struct {
	ID             string // Уникальный идентификатор
	ProviderID     string // Идентификатор поставщика-владельца
	Title          string // Название пакета
	Description    string // Описание
	Price          int    // Цена пакета
	Currency       string // Валюта цены
	DurationInDays int    // Длительность пакета в днях
}
