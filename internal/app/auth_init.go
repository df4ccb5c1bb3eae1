// Package app provides authentication initialization.
package app

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mohamed2661994/glass-transfer-service/internal/domain/model"
	"github.com/Mohamed2661994/glass-transfer-service/internal/repository"
)

const defaultOperatorEmail = "manager@localhost"

// seedDefaultOperator creates a manager account on first startup so the
// login endpoint works before any users have been provisioned. The
// password comes from DEFAULT_OPERATOR_PASSWORD; without it nothing is
// seeded, which is the right default for production.
func seedDefaultOperator(userRepo repository.UserRepositoryInterface) error {
	password := os.Getenv("DEFAULT_OPERATOR_PASSWORD")
	if password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := userRepo.FindByEmail(ctx, defaultOperatorEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Email:    defaultOperatorEmail,
		Username: "manager",
		Password: string(hash),
		Name:     "Default Manager",
		Roles:    []string{model.RoleManager, model.RoleCashier},
		Active:   true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return err
	}

	log.Info().Str("email", defaultOperatorEmail).Msg("Created default operator account")
	return nil
}
