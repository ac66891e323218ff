package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceboard/internal/dashboard/app"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name         string
		form         map[string]string
		wantErrs     map[string][]string
		wantEmail    string
		wantPassword string
	}{
		{
			name: "success - valid credentials",
			form: map[string]string{
				app.FieldEmail:    "user@example.com",
				app.FieldPassword: "secret123",
			},
			wantEmail:    "user@example.com",
			wantPassword: "secret123",
		},
		{
			name: "error - malformed email",
			form: map[string]string{
				app.FieldEmail:    "not-an-email",
				app.FieldPassword: "secret123",
			},
			wantErrs: map[string][]string{
				app.FieldEmail: {app.MsgInvalidEmail},
			},
		},
		{
			name: "error - short password",
			form: map[string]string{
				app.FieldEmail:    "user@example.com",
				app.FieldPassword: "12345",
			},
			wantErrs: map[string][]string{
				app.FieldPassword: {app.MsgShortPassword},
			},
		},
		{
			name: "error - both fields invalid, errors accumulated",
			form: map[string]string{
				app.FieldEmail:    "",
				app.FieldPassword: "",
			},
			wantErrs: map[string][]string{
				app.FieldEmail:    {app.MsgInvalidEmail},
				app.FieldPassword: {app.MsgShortPassword},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, errs := app.ValidateCredentials(tt.form)

			if tt.wantErrs != nil {
				require.Nil(t, creds)
				assert.Equal(t, app.FieldErrors(tt.wantErrs), errs)
				return
			}

			require.NotNil(t, creds)
			assert.Nil(t, errs)
			assert.Equal(t, tt.wantEmail, creds.Email)
			assert.Equal(t, tt.wantPassword, creds.Password)
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	validForm := func() map[string]string {
		return map[string]string{
			app.FieldEmail:           "user@example.com",
			app.FieldName:            "Test User",
			app.FieldPassword:        "secret123",
			app.FieldConfirmPassword: "secret123",
		}
	}

	t.Run("success - complete form", func(t *testing.T) {
		input, errs := app.ValidateRegistration(validForm())

		require.NotNil(t, input)
		assert.Nil(t, errs)
		assert.Equal(t, "user@example.com", input.Email)
		assert.Equal(t, "Test User", input.Name)
		assert.Equal(t, "secret123", input.Password)
	})

	t.Run("error - empty name", func(t *testing.T) {
		form := validForm()
		form[app.FieldName] = "   "

		input, errs := app.ValidateRegistration(form)

		require.Nil(t, input)
		assert.Equal(t, []string{app.MsgEmptyName}, errs[app.FieldName])
	})

	t.Run("error - password mismatch attached to confirmation field", func(t *testing.T) {
		form := validForm()
		form[app.FieldConfirmPassword] = "different123"

		input, errs := app.ValidateRegistration(form)

		require.Nil(t, input)
		assert.Equal(t, []string{app.MsgPasswordMismatch}, errs[app.FieldConfirmPassword])
		assert.NotContains(t, errs, app.FieldPassword)
	})

	t.Run("error - empty form accumulates every violation", func(t *testing.T) {
		input, errs := app.ValidateRegistration(map[string]string{})

		require.Nil(t, input)
		assert.Equal(t, []string{app.MsgInvalidEmail}, errs[app.FieldEmail])
		assert.Equal(t, []string{app.MsgEmptyName}, errs[app.FieldName])
		assert.Equal(t, []string{app.MsgShortPassword}, errs[app.FieldPassword])
		assert.Equal(t, []string{app.MsgShortPassword}, errs[app.FieldConfirmPassword])
	})

	t.Run("error - short mismatched confirmation collects both messages", func(t *testing.T) {
		form := validForm()
		form[app.FieldConfirmPassword] = "short"

		input, errs := app.ValidateRegistration(form)

		require.Nil(t, input)
		assert.Equal(t,
			[]string{app.MsgShortPassword, app.MsgPasswordMismatch},
			errs[app.FieldConfirmPassword])
	})
}

func TestValidateInvoice(t *testing.T) {
	tests := []struct {
		name     string
		form     map[string]string
		wantErrs map[string][]string
		want     *app.InvoiceInput
	}{
		{
			name: "success - valid invoice form",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "19.99",
				app.FieldStatus:     "pending",
			},
			want: &app.InvoiceInput{
				CustomerID: "customer-1",
				Amount:     19.99,
				Status:     "pending",
			},
		},
		{
			name: "error - missing customer",
			form: map[string]string{
				app.FieldAmount: "19.99",
				app.FieldStatus: "paid",
			},
			wantErrs: map[string][]string{
				app.FieldCustomerID: {app.MsgMissingCustomer},
			},
		},
		{
			name: "error - zero amount rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "0",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - negative amount rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "-5.00",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - NaN amount rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "NaN",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - infinite amount rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "Inf",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - signed infinity rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "+Inf",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - non-numeric amount rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "abc",
				app.FieldStatus:     "paid",
			},
			wantErrs: map[string][]string{
				app.FieldAmount: {app.MsgInvalidAmount},
			},
		},
		{
			name: "error - unknown status rejected",
			form: map[string]string{
				app.FieldCustomerID: "customer-1",
				app.FieldAmount:     "19.99",
				app.FieldStatus:     "archived",
			},
			wantErrs: map[string][]string{
				app.FieldStatus: {app.MsgInvalidStatus},
			},
		},
		{
			name: "error - empty form accumulates every violation",
			form: map[string]string{},
			wantErrs: map[string][]string{
				app.FieldCustomerID: {app.MsgMissingCustomer},
				app.FieldAmount:     {app.MsgInvalidAmount},
				app.FieldStatus:     {app.MsgInvalidStatus},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, errs := app.ValidateInvoice(tt.form)

			if tt.wantErrs != nil {
				require.Nil(t, input)
				assert.Equal(t, app.FieldErrors(tt.wantErrs), errs)
				return
			}

			require.NotNil(t, input)
			assert.Nil(t, errs)
			assert.Equal(t, tt.want, input)
		})
	}
}

func TestFieldErrors(t *testing.T) {
	errs := app.FieldErrors{}
	assert.True(t, errs.Empty())

	errs.Add(app.FieldEmail, app.MsgInvalidEmail)
	errs.Add(app.FieldEmail, "second message")

	assert.False(t, errs.Empty())
	assert.Equal(t, []string{app.MsgInvalidEmail, "second message"}, errs[app.FieldEmail])
}
