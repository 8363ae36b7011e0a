package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/repository"
	"github.com/sixtyday/jobboard/internal/usecase"
	"github.com/sixtyday/jobboard/internal/util"
)

type AuthHandler struct {
	uc *usecase.AuthUsecase
}

func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

func (h *AuthHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auth/signup", h.Signup)
	app.Post("/auth/login", h.Login)
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "username, password and email are required",
		})
	}
	if req.Role != "recruiter" && req.Role != "candidate" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "role must be recruiter or candidate",
		})
	}

	if err := h.uc.Register(req); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusConflict,
				Message: "username already taken",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to create account",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Account created",
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	user, err := h.uc.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusUnauthorized,
				Message: "invalid username or password",
			})
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "login failed",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusOK,
		Message: "Logged in",
		Data: dto.UserResponse{
			Username: user.Username,
			Role:     user.Role,
			Email:    user.Email,
		},
	})
}
