package models

// Значения фильтра списка чатов по статусу подписки клиента.
const (
	ChatFilterAll           = "all"
	ChatFilterSubscribed    = "subscribed"
	ChatFilterNotSubscribed = "not_subscribed"
)

// Значения фильтра списка поставщиков по роли.
const (
	RoleFilterAll          = "all"
	RoleFilterCoach        = RoleCoach
	RoleFilterNutritionist = RoleNutritionist
)
