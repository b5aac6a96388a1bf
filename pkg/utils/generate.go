package utils

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
)

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

const tempPasswordChars = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateTempPassword creates the one-time password handed to new staff
// accounts; the user is forced to replace it on first login.
func GenerateTempPassword(length int) string {
	if length <= 0 {
		length = 10
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	out := make([]byte, length)
	for i := range out {
		out[i] = tempPasswordChars[r.Intn(len(tempPasswordChars))]
	}
	return string(out)
}
