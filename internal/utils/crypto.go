// internal/utils/crypto.go
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet leaves out 0, O, 1, l and I so a password copied from the
// startup log cannot be misread.
const passwordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// MinAdminPasswordLength is the shortest password the admin login accepts.
const MinAdminPasswordLength = 8

// GenerateAdminPassword returns a random password for an admin account that
// was bootstrapped without one.
func GenerateAdminPassword(length int) (string, error) {
	if length < MinAdminPasswordLength {
		return "", fmt.Errorf("admin password length %d is below %d", length, MinAdminPasswordLength)
	}

	max := big.NewInt(int64(len(passwordAlphabet)))
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		password[i] = passwordAlphabet[n.Int64()]
	}
	return string(password), nil
}
