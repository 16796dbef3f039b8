package models

import (
	"fmt"
	"strings"

	"github.com/ultraupload/ultraupload/internal/common"
)

// RegistrationRequest is the sign-up form. It is sent once and never stored.
type RegistrationRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"nombre"`
	LastName    string `json:"apellido"`
	Username    string `json:"nombreUsuario"`
	DateOfBirth Date   `json:"fechaNacimiento"`
	NationalID  string `json:"DNI"`
}

// Validate checks that every field was filled in.
func (r RegistrationRequest) Validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"email", r.Email},
		{"password", r.Password},
		{"nombre", r.FirstName},
		{"apellido", r.LastName},
		{"nombreUsuario", r.Username},
		{"DNI", r.NationalID},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s: %w", f.name, common.ErrorEmptyField)
		}
	}
	if r.DateOfBirth.IsZero() {
		return fmt.Errorf("fechaNacimiento: %w", common.ErrorEmptyField)
	}
	return nil
}
