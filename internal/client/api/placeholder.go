package api

import (
	"strings"
	"time"

	"github.com/ultraupload/ultraupload/internal/client/models"
)

// PlaceholderAvatarURL is the avatar given to synthesised users.
const PlaceholderAvatarURL = "https://example.com/avatar.jpg"

// placeholderLoginUser stands in for a user record the backend did not send
// with a login response. Only the email and username reflect real input.
func placeholderLoginUser(email string) models.User {
	username, _, _ := strings.Cut(email, "@")
	return models.User{
		ID:          "1",
		Username:    username,
		Email:       email,
		AvatarURL:   PlaceholderAvatarURL,
		FirstName:   "Usuario",
		LastName:    "Ejemplo",
		DateOfBirth: models.NewDate(1990, time.January, 1),
		NationalID:  "12345678A",
	}
}

// placeholderRegisteredUser stands in for a user record the backend did not
// send with a registration response.
func placeholderRegisteredUser(req models.RegistrationRequest) models.User {
	return models.User{
		ID:          "2",
		Username:    req.Username,
		Email:       req.Email,
		AvatarURL:   PlaceholderAvatarURL,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		NationalID:  req.NationalID,
	}
}
