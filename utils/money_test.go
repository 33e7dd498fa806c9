package utils

import "testing"

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"exact", 29.98, 29.98},
		{"half away from zero", 0.125, 0.13},
		{"rounds down", 29.984, 29.98},
		{"float noise", 14.99 * 2, 29.98},
		{"zero", 0, 0},
		{"negative", -0.125, -0.13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); got != tt.want {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
