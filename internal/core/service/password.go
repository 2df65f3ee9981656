package service

import "golang.org/x/crypto/bcrypt"

// hashPassword derives a salted bcrypt hash from a plaintext password.
func hashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// verifyPassword reports whether plaintext matches the stored hash.
// A malformed hash is treated as a mismatch, never an error.
func verifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
