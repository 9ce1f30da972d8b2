package helpers

import (
	"context"
	"fmt"

	"github.com/boituva/beachclub/internal/logger"
	"github.com/go-chi/jwtauth/v5"
)

// GetUsername - extracts the acting back-office user from the JWT claims
// carried in the request context.
func GetUsername(context context.Context) (string, error) {
	_, claims, _ := jwtauth.FromContext(context)
	login, ok := claims["username"].(string)
	if !ok {
		logger.Warn("Undefined username from token")
		return "", fmt.Errorf("undefined username")
	}
	return login, nil
}
