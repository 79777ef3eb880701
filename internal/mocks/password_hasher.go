package mocks

import (
	"errors"

	"github.com/quillhq/quill-api/internal/service/auth"
)

// MockPasswordHasher implements auth.PasswordHasher for testing. The
// default behavior hashes by prefixing and compares accordingly, so
// tests can build fixtures without running bcrypt.
type MockPasswordHasher struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	Err error

	HashCalls    int
	CompareCalls int
}

var _ auth.PasswordHasher = (*MockPasswordHasher)(nil)

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	m.HashCalls++
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.Err != nil {
		return "", m.Err
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCalls++
	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}
	if m.Err != nil {
		return m.Err
	}
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}
