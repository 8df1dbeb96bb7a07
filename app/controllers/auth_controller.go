package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
	"github.com/shashiranjanraj/ordermanager/pkg/middleware"
)

// AuthController serves /api/v1/auth. Refresh and logout read the token from
// the Authorization header.
type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (h *AuthController) Register(c *ctx.Context) {
	var input dto.Register
	if !c.BindJSON(&input) {
		return
	}
	pair, err := h.service.Register(c.Context(), input)
	reply(c, pair, err)
}

func (h *AuthController) Authenticate(c *ctx.Context) {
	var input dto.Authenticate
	if !c.BindJSON(&input) {
		return
	}
	pair, err := h.service.Authenticate(c.Context(), input)
	reply(c, pair, err)
}

func (h *AuthController) Refresh(c *ctx.Context) {
	token := middleware.BearerToken(c.R)
	if token == "" {
		c.Fail(apperr.Unauthorized("Missing bearer token"))
		return
	}
	pair, err := h.service.Refresh(c.Context(), token)
	reply(c, pair, err)
}

func (h *AuthController) Logout(c *ctx.Context) {
	token := middleware.BearerToken(c.R)
	if token == "" {
		c.Fail(apperr.Unauthorized("Missing bearer token"))
		return
	}
	deleted(c, h.service.Logout(c.Context(), token))
}

// Me returns the caller's own account.
func (h *AuthController) Me(c *ctx.Context) {
	p, ok := c.Principal()
	if !ok {
		c.Fail(apperr.Unauthorized("Unauthorized"))
		return
	}
	customer, err := h.service.Me(c.Context(), p)
	reply(c, customer, err)
}
