package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentMethod(t *testing.T) {
	tests := []struct {
		in      string
		want    PaymentMethod
		wantErr bool
	}{
		{"", PaymentCash, false},
		{"CARD", PaymentCard, false},
		{" qr ", PaymentQR, false},
		{"transfer", PaymentTransfer, false},
		{"cheque", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePaymentMethod(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPaymentMethod, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCanTransition(t *testing.T) {
	completed := Transaction{Status: StatusCompleted}
	assert.True(t, completed.CanTransition(StatusRefunded))
	assert.True(t, completed.CanTransition(StatusCanceled))
	assert.False(t, completed.CanTransition(StatusCompleted))

	for _, s := range []Status{StatusRefunded, StatusCanceled} {
		tx := Transaction{Status: s}
		for _, to := range []Status{StatusCompleted, StatusRefunded, StatusCanceled} {
			assert.False(t, tx.CanTransition(to), "%s -> %s", s, to)
		}
	}
}
