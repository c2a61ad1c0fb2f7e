package utils

import "golang.org/x/crypto/bcrypt"

// HashPIN returns a bcrypt hash of a boarder PIN using the given cost.
func HashPIN(plain string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPIN safely compares a bcrypt hash and a plain PIN.
func VerifyPIN(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// ValidPINFormat reports whether s is exactly four ASCII digits. Every
// stored PIN hash was produced from a string that passed this check.
func ValidPINFormat(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
