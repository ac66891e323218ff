package app

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"invoiceboard/internal/dashboard/domain/entities"
)

// Имена полей формы, распознаваемые действиями.
const (
	FieldEmail           = "email"
	FieldName            = "name"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirm-password"
	FieldCustomerID      = "customerId"
	FieldAmount          = "amount"
	FieldStatus          = "status"
)

// Сообщения валидации, отображаемые у конкретных полей формы.
const (
	MsgInvalidEmail     = "Please enter a valid email address."
	MsgEmptyName        = "Please enter a name."
	MsgShortPassword    = "Password must be at least 6 characters."
	MsgPasswordMismatch = "Passwords do not match."
	MsgMissingCustomer  = "Please select a customer."
	MsgInvalidAmount    = "Please enter an amount greater than $0."
	MsgInvalidStatus    = "Please select an invoice status."
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// FieldErrors сопоставляет имя поля со списком сообщений об ошибках.
type FieldErrors map[string][]string

// Add добавляет сообщение об ошибке для поля.
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Empty сообщает об отсутствии накопленных ошибок.
func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

// rule - одно декларативное правило схемы: проверяемое поле и предикат,
// возвращающий сообщение об ошибке либо пустую строку.
type rule struct {
	field string
	check func(form map[string]string) string
}

// schema - упорядоченный список правил. Правила выполняются все до единого,
// ошибки накапливаются: частичного успеха у схемы нет.
type schema []rule

func (s schema) validate(form map[string]string) FieldErrors {
	errs := FieldErrors{}
	for _, r := range s {
		if msg := r.check(form); msg != "" {
			errs.Add(r.field, msg)
		}
	}
	return errs
}

func emailRule(field string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		if !emailRegex.MatchString(form[field]) {
			return MsgInvalidEmail
		}
		return ""
	}}
}

func requiredRule(field, message string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		if strings.TrimSpace(form[field]) == "" {
			return message
		}
		return ""
	}}
}

func minLengthRule(field string, length int, message string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		if len(form[field]) < length {
			return message
		}
		return ""
	}}
}

func equalsRule(field, other, message string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		if form[field] != form[other] {
			return message
		}
		return ""
	}}
}

func amountRule(field string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		// ParseFloat принимает "NaN" и "Inf" без ошибки.
		amount, err := strconv.ParseFloat(form[field], 64)
		if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
			return MsgInvalidAmount
		}
		return ""
	}}
}

func statusRule(field string) rule {
	return rule{field: field, check: func(form map[string]string) string {
		if !entities.ValidStatus(form[field]) {
			return MsgInvalidStatus
		}
		return ""
	}}
}

// Схемы для каждого вида действия.
var (
	credentialsSchema = schema{
		emailRule(FieldEmail),
		minLengthRule(FieldPassword, 6, MsgShortPassword),
	}

	registrationSchema = schema{
		emailRule(FieldEmail),
		requiredRule(FieldName, MsgEmptyName),
		minLengthRule(FieldPassword, 6, MsgShortPassword),
		minLengthRule(FieldConfirmPassword, 6, MsgShortPassword),
		equalsRule(FieldConfirmPassword, FieldPassword, MsgPasswordMismatch),
	}

	invoiceSchema = schema{
		requiredRule(FieldCustomerID, MsgMissingCustomer),
		amountRule(FieldAmount),
		statusRule(FieldStatus),
	}
)

// CredentialsInput - проверенные учетные данные для входа.
type CredentialsInput struct {
	Email    string
	Password string
}

// RegistrationInput - проверенные данные регистрации.
type RegistrationInput struct {
	Email    string
	Name     string
	Password string
}

// InvoiceInput - проверенные данные счета до нормализации:
// сумма еще в долларах, дата не назначена.
type InvoiceInput struct {
	CustomerID string
	Amount     float64
	Status     string
}

// ValidateCredentials проверяет форму входа по схеме учетных данных.
func ValidateCredentials(form map[string]string) (*CredentialsInput, FieldErrors) {
	if errs := credentialsSchema.validate(form); !errs.Empty() {
		return nil, errs
	}
	return &CredentialsInput{
		Email:    form[FieldEmail],
		Password: form[FieldPassword],
	}, nil
}

// ValidateRegistration проверяет форму регистрации.
// Несовпадение паролей привязывается к полю confirm-password.
func ValidateRegistration(form map[string]string) (*RegistrationInput, FieldErrors) {
	if errs := registrationSchema.validate(form); !errs.Empty() {
		return nil, errs
	}
	return &RegistrationInput{
		Email:    form[FieldEmail],
		Name:     form[FieldName],
		Password: form[FieldPassword],
	}, nil
}

// ValidateInvoice проверяет форму счета. Одна и та же схема применяется
// и к созданию, и к обновлению счета.
func ValidateInvoice(form map[string]string) (*InvoiceInput, FieldErrors) {
	if errs := invoiceSchema.validate(form); !errs.Empty() {
		return nil, errs
	}
	amount, _ := strconv.ParseFloat(form[FieldAmount], 64)
	return &InvoiceInput{
		CustomerID: form[FieldCustomerID],
		Amount:     amount,
		Status:     form[FieldStatus],
	}, nil
}
