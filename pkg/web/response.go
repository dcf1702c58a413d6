// Package web defines common components for a web application.
package web

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"accessToken,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"accessTokenExpiresAt,omitempty"`
	RefreshToken          string    `json:"refreshToken,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refreshTokenExpiresAt,omitempty"`
	Message               string    `json:"message,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// GetErrorMsg converts validator errors into a human readable message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	field := ve[0]

	switch field.Tag() {
	case "required":
		return field.Field() + " field is required"
	case "email":
		return field.Field() + " field must contain a valid email"
	case "alphanum":
		return field.Field() + " field must contain only alphanumeric characters"
	case "min":
		return fmt.Sprintf("%s field must be at least %s", field.Field(), field.Param())
	case "max":
		return fmt.Sprintf("%s field must be at most %s", field.Field(), field.Param())
	case "gt":
		return fmt.Sprintf("%s field must be greater than %s", field.Field(), field.Param())
	case "accounttype":
		return field.Field() + " field must be either checking or savings"
	}

	return field.Field() + " field is invalid"
}
