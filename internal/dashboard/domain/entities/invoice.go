package entities

import "errors"

// Статусы счета.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Ошибки домена счетов.
var (
	ErrInvoiceNotFound = errors.New("invoice not found")
)

// Invoice представляет счет, выставленный клиенту.
// Amount хранится в минимальных единицах валюты (центах).
type Invoice struct {
	ID         string
	CustomerID string
	Amount     int64
	Status     string
	Date       string
}

// ValidStatus проверяет, что статус счета является одним из допустимых.
func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusPaid
}
