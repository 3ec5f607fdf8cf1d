package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"os"
	"strings"
)

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferenceCode builds a booking reference like "BK-7F3K9QZ2",
// readable enough for a receptionist to relay over the phone.
func GenerateReferenceCode() (string, error) {
	return generateCode("BK-", 8)
}

func generateCode(prefix string, length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid code length")
	}
	var sb strings.Builder
	sb.WriteString(prefix)
	max := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[n.Int64()])
	}
	return sb.String(), nil
}
