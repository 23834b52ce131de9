package auth

import "golang.org/x/crypto/bcrypt"

const bcryptCost = 10

// PINLength is the required number of decimal digits in a PIN.
const PINLength = 4

// ValidPIN reports whether pin is exactly 4 decimal digits.
func ValidPIN(pin string) bool {
	if len(pin) != PINLength {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// HashPIN derives the stored credential digest from a PIN. bcrypt salts per
// call, so equal PINs never produce equal digests.
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPIN reports whether pin matches the stored digest.
func CheckPIN(digest, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pin)) == nil
}
