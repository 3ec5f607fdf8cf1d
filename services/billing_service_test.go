package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileTotal(t *testing.T) {
	tests := []struct {
		name    string
		booking float64
		spa     float64
		food    float64
		want    float64
	}{
		{"all three buckets", 2000, 450, 320, 2770},
		{"room only", 2000, 0, 0, 2000},
		{"no room charge", 0, 100, 50, 150},
		{"empty stay", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReconcileTotal(tt.booking, tt.spa, tt.food))
		})
	}
}
