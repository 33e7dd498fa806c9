package utils

import (
	"math/rand"
	"strconv"
)

// GeneratePIN returns a random 6-digit numeric code (100000-999999).
// Uniqueness against existing orders is the caller's job.
func GeneratePIN() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
