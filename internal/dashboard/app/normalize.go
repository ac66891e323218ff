package app

import (
	"math"
	"time"
)

// DateLayout - каноническая форма даты счета.
const DateLayout = "2006-01-02"

// AmountToCents переводит сумму в долларах в целые центы,
// округляя к ближайшему целому.
func AmountToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CentsToAmount переводит центы обратно в доллары для отображения.
func CentsToAmount(cents int64) float64 {
	return float64(cents) / 100
}

// CurrentDate возвращает текущую календарную дату в канонической форме.
// Назначается счету только при создании.
func CurrentDate() string {
	return time.Now().UTC().Format(DateLayout)
}
