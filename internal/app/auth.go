package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/movie-booking-api/api"
	"github.com/metinatakli/movie-booking-api/internal/domain"
)

func (app *Application) RegisterUser(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.RegisterRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	user := domain.User{
		Nickname: input.Nickname,
		Username: input.Username,
		Email:    input.Email,
		Role:     domain.RoleUser,
	}

	err = user.Password.Set(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			logger.Warn("registration attempt for existing username or email")
			app.conflictResponse(w, r, ErrUserExists)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("user registered", "user_id", user.ID)

	resp := api.RegisterResponse{
		Success: true,
		Message: "User registered",
		User: api.UserResponse{
			Id:        user.ID,
			Nickname:  user.Nickname,
			Username:  user.Username,
			Email:     user.Email,
			Role:      string(user.Role),
			CreatedAt: user.CreatedAt,
		},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		logger.Warn("login validation failed")
		app.invalidCredentialsResponse(w, r)
		return
	}

	user, err := app.userRepo.GetByUsername(r.Context(), input.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			logger.Warn("login attempt for non-existent user")
			app.invalidCredentialsResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	match, err := user.Password.Matches(input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !match {
		logger.Warn("login attempt with wrong password", "user_id", user.ID)
		app.invalidCredentialsResponse(w, r)
		return
	}

	token, err := app.issuer.Issue(user)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("user logged in", "user_id", user.ID)

	resp := api.LoginResponse{
		Success:   true,
		Token:     token.Plaintext,
		ExpiresAt: token.Expiry,
		Payload: api.LoginPayload{
			User: api.LoginUser{
				Id:   user.ID,
				Name: user.Nickname,
				Role: string(user.Role),
			},
		},
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// Logout revokes the token the request was authenticated with.
func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	claims := contextGetClaims(r)

	err := app.tokenRepo.Revoke(r.Context(), claims.ID, claims.ExpiresAt.Time)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.contextGetLogger(r).Info("user logged out")

	app.writeMessage(w, r, http.StatusOK, "Logged out")
}
