package app

import (
	"invoiceboard/internal/dashboard/domain/services"
)

// Status - дискриминант результата действия.
type Status string

// Возможные исходы действия.
const (
	StatusOK      Status = "ok"
	StatusInvalid Status = "invalid"
	StatusFailed  Status = "failed"
)

// ActionResult - единый результат каждого действия-мутации.
// Навигация выражается явным полем Redirect, а не управляющим
// исключением: вызывающая сторона переключается по Status и Redirect.
type ActionResult struct {
	Status   Status            `json:"status"`
	Errors   FieldErrors       `json:"errors,omitempty"`
	Message  string            `json:"message,omitempty"`
	Redirect string            `json:"-"`
	Session  *services.Session `json:"-"`
}

// OK создает успешный результат с сообщением.
func OK(message string) *ActionResult {
	return &ActionResult{Status: StatusOK, Message: message}
}

// Navigate создает успешный результат с указанием перехода.
func Navigate(path string) *ActionResult {
	return &ActionResult{Status: StatusOK, Redirect: path}
}

// Invalid создает результат с ошибками валидации по полям.
func Invalid(errs FieldErrors, message string) *ActionResult {
	return &ActionResult{Status: StatusInvalid, Errors: errs, Message: message}
}

// Failed создает результат с единственным сообщением об ошибке.
func Failed(message string) *ActionResult {
	return &ActionResult{Status: StatusFailed, Message: message}
}
