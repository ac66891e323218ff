package services

import (
	"time"

	"invoiceboard/internal/dashboard/ports/services"
)

// ServiceFactory создает сервисы паролей и сессий панели.
type ServiceFactory struct {
	passwordService services.PasswordService
	sessionService  services.SessionService
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(sessionSecretKey string, sessionTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		passwordService: NewBcrypt(bcryptCost),
		sessionService:  NewSession(sessionSecretKey, sessionTTL),
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return f.passwordService
}

// SessionService возвращает сервис для работы с сессиями.
func (f *ServiceFactory) SessionService() services.SessionService {
	return f.sessionService
}
