package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Seats    int     `validate:"gt=0"`
	ShowTime string  `validate:"required,show_time"`
	Status   *string `validate:"omitempty,booking_status"`
	Password string  `validate:"password"`
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewValidator(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name      string
		input     sample
		wantField string
		wantMsg   string
	}{
		{
			name:  "valid",
			input: sample{Seats: 2, ShowTime: "20:30", Status: ptr("pending"), Password: "Secret123!"},
		},
		{
			name:      "zero seats",
			input:     sample{Seats: 0, ShowTime: "20:30", Password: "Secret123!"},
			wantField: "Seats",
			wantMsg:   "must be greater than 0",
		},
		{
			name:      "bad show time",
			input:     sample{Seats: 1, ShowTime: "25:99", Password: "Secret123!"},
			wantField: "ShowTime",
			wantMsg:   "must be HH:MM or HH:MM:SS",
		},
		{
			name:      "unknown status",
			input:     sample{Seats: 1, ShowTime: "10:00:00", Status: ptr("refunded"), Password: "Secret123!"},
			wantField: "Status",
			wantMsg:   "must be one of pending, confirmed, cancelled",
		},
		{
			name:      "weak password",
			input:     sample{Seats: 1, ShowTime: "10:00", Password: "password"},
			wantField: "Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var validationErrs validator.ValidationErrors
			require.True(t, errors.As(err, &validationErrs))
			require.Len(t, validationErrs, 1)
			assert.Equal(t, tt.wantField, validationErrs[0].Field())

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, ValidationMessage(validationErrs[0]))
			}
		})
	}
}
