package entities

// Customer представляет клиента, на которого выставляются счета.
// Записи клиентов доступны этому сервису только для чтения.
type Customer struct {
	ID       string
	Name     string
	Email    string
	ImageURL string
}
