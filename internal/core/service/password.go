package service

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted bcrypt digest of plaintext. bcrypt embeds a
// random salt, so two calls with the same input yield different digests.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored digest. A
// malformed digest counts as a mismatch rather than an error, so callers
// cannot distinguish a corrupt record from a wrong password.
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
