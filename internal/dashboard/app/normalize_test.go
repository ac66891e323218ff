package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/undefinedlabs/go-mpatch"

	"invoiceboard/internal/dashboard/app"
)

func TestAmountToCents(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   int64
	}{
		{name: "typical price", amount: 19.99, want: 1999},
		{name: "whole dollars", amount: 250, want: 25000},
		{name: "single cent", amount: 0.01, want: 1},
		{name: "float representation error is rounded away", amount: 32.57, want: 3257},
		{name: "larger amount", amount: 1024.55, want: 102455},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.AmountToCents(tt.amount))
		})
	}
}

func TestCentsToAmount(t *testing.T) {
	assert.InDelta(t, 19.99, app.CentsToAmount(1999), 0.0001)
	assert.InDelta(t, 0.01, app.CentsToAmount(1), 0.0001)
}

func TestCurrentDate(t *testing.T) {
	fixed := time.Date(2024, time.March, 7, 23, 59, 59, 0, time.UTC)

	patch, err := mpatch.PatchMethod(time.Now, func() time.Time {
		return fixed
	})
	require.NoError(t, err, "Failed to patch time.Now")
	defer func() {
		require.NoError(t, patch.Unpatch())
	}()

	assert.Equal(t, "2024-03-07", app.CurrentDate())
}

func TestCurrentDateLayout(t *testing.T) {
	date := app.CurrentDate()

	parsed, err := time.Parse(app.DateLayout, date)
	require.NoError(t, err)
	assert.Equal(t, date, parsed.Format(app.DateLayout))
}
