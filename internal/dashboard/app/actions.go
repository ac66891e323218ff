// Package app реализует конвейер проверенных мутаций панели учета.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"invoiceboard/internal/dashboard/domain/entities"
	"invoiceboard/internal/dashboard/ports/repositories"
	svc "invoiceboard/internal/dashboard/ports/services"
	"invoiceboard/pkg/logger"
)

const (
	methodAuthenticate  = "Authenticate"
	methodRegister      = "Register"
	methodCreateInvoice = "CreateInvoice"
	methodUpdateInvoice = "UpdateInvoice"
	methodDeleteInvoice = "DeleteInvoice"
	methodListInvoices  = "ListInvoices"
	methodListCustomers = "ListCustomers"
	methodGetInvoice    = "GetInvoice"

	msgAuthAttempt          = "authentication attempt"
	msgAuthNonExistent      = "authentication attempt with non-existent email"
	msgAuthWrongPassword    = "invalid password provided"
	msgAuthSucceeded        = "user authenticated successfully"
	msgStartRegistration    = "starting user registration"
	msgEmailExists          = "registration with already registered email"
	msgUserRegistered       = "user registered successfully"
	msgCreatingInvoice      = "creating invoice"
	msgInvoiceCreated       = "invoice created successfully"
	msgUpdatingInvoice      = "updating invoice"
	msgInvoiceUpdated       = "invoice updated successfully"
	msgDeletingInvoice      = "deleting invoice"
	msgInvoiceDeleted       = "invoice deleted successfully"
	msgValidationFailed     = "form validation failed"
	msgInvoicesCacheHit     = "invoices view served from cache"
	msgInvoicesCacheRefresh = "invoices view cached"

	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"
	msgErrEstablishSession  = "failed to establish session"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrCreateInvoice     = "failed to create invoice"
	msgErrUpdateInvoice     = "failed to update invoice"
	msgErrDeleteInvoice     = "failed to delete invoice"
	msgErrInvalidateCache   = "failed to invalidate invoices view cache"
	msgErrCacheRead         = "failed to read invoices view cache"
	msgErrCacheWrite        = "failed to write invoices view cache"
)

// Сообщения, возвращаемые вызывающей стороне.
const (
	MsgInvalidCredentials   = "Invalid credentials."
	MsgSomethingWentWrong   = "Something went wrong, please try again."
	MsgEmailTaken           = "Email already exists. Please sign in."
	MsgMissingRegistration  = "Missing Fields. Failed to Create Account."
	MsgMissingInvoiceCreate = "Missing Fields. Failed to Create Invoice."
	MsgMissingInvoiceUpdate = "Missing Fields. Failed to Update Invoice."
	MsgDBCreateInvoice      = "Database Error: Failed to Create Invoice."
	MsgDBUpdateInvoice      = "Database Error: Failed to Update Invoice."
	MsgDBDeleteInvoice      = "Database Error: Failed to Delete Invoice."
	MsgInvoiceDeleted       = "Deleted Invoice."
)

// Пути перехода после успешных действий.
const (
	PathDashboard = "/dashboard"
	PathInvoices  = "/dashboard/invoices"
)

// Ключи кэшированного представления счетов.
const (
	invoicesViewPrefix = "invoices:"
	invoicesViewKey    = "invoices:all"
)

// Actions - оркестратор мутаций: каждое действие проходит шаги
// валидация - нормализация - сохранение - инвалидация кэша - навигация.
// Все побочные эффекты выполняются через явно переданных соратников.
type Actions struct {
	userRepo     repositories.UserRepository
	invoiceRepo  repositories.InvoiceRepository
	customerRepo repositories.CustomerRepository
	passwordSvc  svc.PasswordService
	sessionSvc   svc.SessionService
	viewCache    svc.ViewCache
}

// NewActions создает новый оркестратор действий.
func NewActions(
	userRepo repositories.UserRepository,
	invoiceRepo repositories.InvoiceRepository,
	customerRepo repositories.CustomerRepository,
	passwordSvc svc.PasswordService,
	sessionSvc svc.SessionService,
	viewCache svc.ViewCache,
) *Actions {
	return &Actions{
		userRepo:     userRepo,
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		passwordSvc:  passwordSvc,
		sessionSvc:   sessionSvc,
		viewCache:    viewCache,
	}
}

// Authenticate проверяет учетные данные и устанавливает сессию.
// Ошибочные учетные данные и сбой соратника различаются до конца:
// первые дают "Invalid credentials.", второй - общее сообщение.
func (a *Actions) Authenticate(ctx context.Context, form map[string]string) *ActionResult {
	log := logger.Log(ctx).With(zap.String("method", methodAuthenticate))
	log.Debug(ctx, msgAuthAttempt)

	creds, errs := ValidateCredentials(form)
	if errs != nil {
		log.Debug(ctx, msgValidationFailed)
		return Invalid(errs, MsgInvalidCredentials)
	}

	user, err := a.userRepo.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgAuthNonExistent)
			return Failed(MsgInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return Failed(MsgSomethingWentWrong)
	}

	valid, err := a.passwordSvc.Verify(ctx, creds.Password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err), zap.String("userID", user.ID))
		return Failed(MsgSomethingWentWrong)
	}
	if !valid {
		log.Debug(ctx, msgAuthWrongPassword, zap.String("userID", user.ID))
		return Failed(MsgInvalidCredentials)
	}

	session, err := a.sessionSvc.Establish(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrEstablishSession, zap.Error(err), zap.String("userID", user.ID))
		return Failed(MsgSomethingWentWrong)
	}

	log.Info(ctx, msgAuthSucceeded, zap.String("userID", user.ID))

	result := Navigate(PathDashboard)
	result.Session = session
	return result
}

// Register создает учетную запись и сразу устанавливает сессию.
// Дубликат email отличается от прочих сбоев хранилища.
func (a *Actions) Register(ctx context.Context, form map[string]string) *ActionResult {
	log := logger.Log(ctx).With(zap.String("method", methodRegister))
	log.Debug(ctx, msgStartRegistration)

	input, errs := ValidateRegistration(form)
	if errs != nil {
		log.Debug(ctx, msgValidationFailed)
		return Invalid(errs, MsgMissingRegistration)
	}

	hash, err := a.passwordSvc.Hash(ctx, input.Password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return Failed(MsgSomethingWentWrong)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, entities.ErrEmailAlreadyExists) {
			log.Debug(ctx, msgEmailExists)
			return Failed(MsgEmailTaken)
		}
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return Failed(MsgSomethingWentWrong)
	}

	log.Info(ctx, msgUserRegistered, zap.String("userID", user.ID))

	// Успешная регистрация завершается входом: результат установки
	// сессии - навигация, а не ошибка.
	session, err := a.sessionSvc.Establish(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrEstablishSession, zap.Error(err), zap.String("userID", user.ID))
		return Failed(MsgSomethingWentWrong)
	}

	result := Navigate(PathDashboard)
	result.Session = session
	return result
}

// CreateInvoice проверяет, нормализует и сохраняет новый счет,
// затем инвалидирует кэш представления и направляет к списку счетов.
func (a *Actions) CreateInvoice(ctx context.Context, form map[string]string) *ActionResult {
	log := logger.Log(ctx).With(zap.String("method", methodCreateInvoice))
	log.Debug(ctx, msgCreatingInvoice)

	input, errs := ValidateInvoice(form)
	if errs != nil {
		log.Debug(ctx, msgValidationFailed)
		return Invalid(errs, MsgMissingInvoiceCreate)
	}

	invoice := &entities.Invoice{
		CustomerID: input.CustomerID,
		Amount:     AmountToCents(input.Amount),
		Status:     input.Status,
		Date:       CurrentDate(),
	}

	invoiceID, err := a.invoiceRepo.Create(ctx, invoice)
	if err != nil {
		log.Error(ctx, msgErrCreateInvoice, zap.Error(err))
		return Failed(MsgDBCreateInvoice)
	}

	log.Info(ctx, msgInvoiceCreated, zap.String("invoiceID", invoiceID))

	a.invalidateInvoicesView(ctx)
	return Navigate(PathInvoices)
}

// UpdateInvoice применяет ту же схему валидации, что и создание,
// и изменяет только customerId, сумму и статус счета.
func (a *Actions) UpdateInvoice(ctx context.Context, invoiceID string, form map[string]string) *ActionResult {
	log := logger.Log(ctx).With(
		zap.String("method", methodUpdateInvoice),
		zap.String("invoiceID", invoiceID),
	)
	log.Debug(ctx, msgUpdatingInvoice)

	input, errs := ValidateInvoice(form)
	if errs != nil {
		log.Debug(ctx, msgValidationFailed)
		return Invalid(errs, MsgMissingInvoiceUpdate)
	}

	invoice := &entities.Invoice{
		ID:         invoiceID,
		CustomerID: input.CustomerID,
		Amount:     AmountToCents(input.Amount),
		Status:     input.Status,
	}

	if err := a.invoiceRepo.Update(ctx, invoice); err != nil {
		log.Error(ctx, msgErrUpdateInvoice, zap.Error(err))
		return Failed(MsgDBUpdateInvoice)
	}

	log.Info(ctx, msgInvoiceUpdated)

	a.invalidateInvoicesView(ctx)
	return Navigate(PathInvoices)
}

// DeleteInvoice удаляет счет. Навигация не требуется: вызывающая
// сторона остается на списке и перечитывает его после инвалидации.
func (a *Actions) DeleteInvoice(ctx context.Context, invoiceID string) *ActionResult {
	log := logger.Log(ctx).With(
		zap.String("method", methodDeleteInvoice),
		zap.String("invoiceID", invoiceID),
	)
	log.Debug(ctx, msgDeletingInvoice)

	if err := a.invoiceRepo.Delete(ctx, invoiceID); err != nil {
		log.Error(ctx, msgErrDeleteInvoice, zap.Error(err))
		return Failed(MsgDBDeleteInvoice)
	}

	log.Info(ctx, msgInvoiceDeleted)

	a.invalidateInvoicesView(ctx)
	return OK(MsgInvoiceDeleted)
}

// ListInvoices возвращает представление счетов, используя кэш.
func (a *Actions) ListInvoices(ctx context.Context) ([]*entities.Invoice, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListInvoices))

	if cached, err := a.viewCache.Get(ctx, invoicesViewKey); err != nil {
		log.Warn(ctx, msgErrCacheRead, zap.Error(err))
	} else if cached != "" {
		var invoices []*entities.Invoice
		if err := json.Unmarshal([]byte(cached), &invoices); err == nil {
			log.Debug(ctx, msgInvoicesCacheHit)
			return invoices, nil
		}
	}

	invoices, err := a.invoiceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	if encoded, err := json.Marshal(invoices); err == nil {
		if err := a.viewCache.Set(ctx, invoicesViewKey, string(encoded), 0); err != nil {
			log.Warn(ctx, msgErrCacheWrite, zap.Error(err))
		} else {
			log.Debug(ctx, msgInvoicesCacheRefresh)
		}
	}

	return invoices, nil
}

// ListCustomers возвращает справочник клиентов для формы счета.
func (a *Actions) ListCustomers(ctx context.Context) ([]*entities.Customer, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListCustomers))
	log.Debug(ctx, "listing customers")

	customers, err := a.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	return customers, nil
}

// GetInvoice возвращает счет для предзаполнения формы редактирования.
func (a *Actions) GetInvoice(ctx context.Context, invoiceID string) (*entities.Invoice, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodGetInvoice),
		zap.String("invoiceID", invoiceID),
	)
	log.Debug(ctx, "getting invoice")

	invoice, err := a.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, entities.ErrInvoiceNotFound) {
			return nil, entities.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("getting invoice: %w", err)
	}
	return invoice, nil
}

// invalidateInvoicesView сбрасывает кэш представления счетов.
// Сбой инвалидации не отменяет уже выполненную мутацию:
// источником истины остается хранилище.
func (a *Actions) invalidateInvoicesView(ctx context.Context) {
	if err := a.viewCache.Invalidate(ctx, invoicesViewPrefix); err != nil {
		logger.Log(ctx).Warn(ctx, msgErrInvalidateCache, zap.Error(err))
	}
}
