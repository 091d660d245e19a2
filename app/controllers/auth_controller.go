package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/pkg/bind"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

type loginInput struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	errs, err := bind.JSON(r, &in)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Malformed request body")
		return
	}
	if len(errs) > 0 {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.service.Login(in.Email, in.Password)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("login rejected", "email", in.Email)
		response.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response.Success(w, result)
}
