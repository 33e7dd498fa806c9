package utils

import (
	"regexp"
	"testing"
)

func TestGeneratePIN(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)
	for i := 0; i < 1000; i++ {
		pin := GeneratePIN()
		if !pattern.MatchString(pin) {
			t.Fatalf("GeneratePIN() = %q, want 6-digit code", pin)
		}
	}
}
