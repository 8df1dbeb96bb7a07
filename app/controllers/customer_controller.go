package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

type CustomerController struct {
	service *services.CustomerService
}

func NewCustomerController(service *services.CustomerService) *CustomerController {
	return &CustomerController{service: service}
}

func (h *CustomerController) Index(c *ctx.Context) {
	index(c, h.service.List, h.service.Page)
}

func (h *CustomerController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	customer, err := h.service.Get(c.Context(), id)
	reply(c, customer, err)
}

func (h *CustomerController) Store(c *ctx.Context) {
	var input dto.Customer
	if !c.BindJSON(&input) {
		return
	}
	customer, err := h.service.Create(c.Context(), input)
	created(c, customer, err)
}

func (h *CustomerController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.CustomerUpdate
	if !c.BindJSON(&input) {
		return
	}
	customer, err := h.service.Update(c.Context(), id, input)
	reply(c, customer, err)
}

func (h *CustomerController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.Delete(c.Context(), id))
}

func (h *CustomerController) ByName(c *ctx.Context) {
	first, err1 := c.QueryString("firstName")
	last, err2 := c.QueryString("lastName")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByName(c.Context(), first, last)
	reply(c, rows, err)
}

func (h *CustomerController) ByFirstName(c *ctx.Context) {
	name, err := c.ParamString("firstName")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByFirstName(c.Context(), name)
	reply(c, rows, err)
}

func (h *CustomerController) ByLastName(c *ctx.Context) {
	name, err := c.ParamString("lastName")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByLastName(c.Context(), name)
	reply(c, rows, err)
}

func (h *CustomerController) BornOn(c *ctx.Context) {
	day, err := c.ParamDate("date")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.BornOn(c.Context(), day)
	reply(c, rows, err)
}

func (h *CustomerController) BornBefore(c *ctx.Context) {
	day, err := c.ParamDate("date")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.BornBefore(c.Context(), day)
	reply(c, rows, err)
}

// BornBetween handles /customers/birthdate-range?startDate=&endDate= (inclusive).
func (h *CustomerController) BornBetween(c *ctx.Context) {
	start, err1 := c.QueryDate("startDate")
	end, err2 := c.QueryDate("endDate")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.BornBetween(c.Context(), start, end)
	reply(c, rows, err)
}
