package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// MinLength mirrors the signup request validation; Hash enforces it
// again so no caller can sneak a shorter secret past the transport.
const MinLength = 8

var (
	ErrTooShort      = errors.New("password is shorter than the minimum length")
	ErrHashingFailed = errors.New("password hashing failed")
	ErrMismatch      = errors.New("password does not match")
)

func Hash(plain string) (string, error) {
	if len(plain) < MinLength {
		return "", ErrTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(hashed), nil
}

func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}
	return nil
}
