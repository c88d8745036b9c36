// Package auth verifies back-office credentials. The verifier is an
// interface on the consuming side; this package ships the static list
// implementation configured from the environment.
package auth

import (
	"crypto/subtle"

	"yolimar/configs"
	"yolimar/internal/domain"
)

type StaticVerifier struct {
	users []configs.AdminUser
}

func NewStaticVerifier(users []configs.AdminUser) *StaticVerifier {
	return &StaticVerifier{users: users}
}

// Verify checks the pair against the configured list and returns the matched
// user profile.
func (v *StaticVerifier) Verify(email, password string) (*domain.User, bool) {
	for _, u := range v.users {
		emailOK := subtle.ConstantTimeCompare([]byte(u.Email), []byte(email)) == 1
		passOK := subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1
		if emailOK && passOK {
			return &domain.User{
				Email: u.Email,
				Name:  u.Name,
				Role:  u.Role,
			}, true
		}
	}
	return nil, false
}
