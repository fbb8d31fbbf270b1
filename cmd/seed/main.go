package main

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/di"
	"hotel/internal/domains/user/model/dto"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/shared/validator"
)

// seed creates the administrator account from APP_ADMIN_* unless the
// username or email is already taken.
func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	admin := cfg.App.Admin
	req := dto.CreateUserRequest{
		Username:      admin.Username,
		Email:         admin.Email,
		Password:      admin.Password,
		FirstName:     admin.FirstName,
		LastName:      admin.LastName,
		DateOfBirth:   admin.DateOfBirth,
		ContactNumber: admin.ContactNumber,
		Role:          constant.RoleAdmin,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Fatal().Err(err).Strs("details", failure.GetDetails(err)).Msg("Invalid APP_ADMIN_* configuration")
	}

	users := di.InitializeSeeder()

	created, err := users.Create(context.Background(), req)

	switch {
	case failure.GetCode(err) == http.StatusBadRequest:
		log.Info().Str("username", admin.Username).Msg("Admin account already exists, nothing to seed")
	case err != nil:
		log.Fatal().Err(err).Msg("Failed to seed admin account")
	default:
		log.Info().Str("id", created.ID).Str("username", created.Username).Msg("Admin account created")
	}
}
