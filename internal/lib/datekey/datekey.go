// Package datekey содержит вспомогательные функции для работы с календарными
// ключами вида YYYY-MM-DD. Ключи сравниваются и сортируются как строки.
package datekey

import (
	"fmt"
	"time"
)

// Layout — формат календарного ключа.
const Layout = "2006-01-02"

// Today возвращает ключ текущего календарного дня.
func Today() string {
	return time.Now().Format(Layout)
}

// Parse проверяет, что строка является корректным календарным ключом.
func Parse(s string) (time.Time, error) {
	const op = "datekey.Parse"
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// Shift возвращает ключ дня, отстоящего от t на days дней.
func Shift(t time.Time, days int) string {
	return t.AddDate(0, 0, days).Format(Layout)
}
