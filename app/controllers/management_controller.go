package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

// ManagementController serves /api/v1/management. Access rules live in
// rbac.Management.
type ManagementController struct {
	service *services.AuthService
}

func NewManagementController(service *services.AuthService) *ManagementController {
	return &ManagementController{service: service}
}

// Accounts is always paginated.
func (h *ManagementController) Accounts(c *ctx.Context) {
	page, limit, _, err := c.PageParams()
	if err != nil {
		c.Fail(err)
		return
	}
	rows, pagination, err := h.service.Accounts(c.Context(), page, limit)
	if err != nil {
		c.Fail(err)
		return
	}
	c.Paginated(rows, pagination)
}

func (h *ManagementController) CreateAccount(c *ctx.Context) {
	var input dto.ManagedCustomer
	if !c.BindJSON(&input) {
		return
	}
	customer, err := h.service.CreateAccount(c.Context(), input)
	created(c, customer, err)
}

func (h *ManagementController) ChangeRole(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.RoleChange
	if !c.BindJSON(&input) {
		return
	}
	customer, err := h.service.ChangeRole(c.Context(), id, input)
	reply(c, customer, err)
}

func (h *ManagementController) RevokeTokens(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.RevokeTokens(c.Context(), id))
}
