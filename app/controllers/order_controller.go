package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (h *OrderController) Index(c *ctx.Context) {
	index(c, h.service.List, h.service.Page)
}

func (h *OrderController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	order, err := h.service.Get(c.Context(), id)
	reply(c, order, err)
}

func (h *OrderController) Store(c *ctx.Context) {
	var input dto.Order
	if !c.BindJSON(&input) {
		return
	}
	order, err := h.service.Create(c.Context(), input)
	created(c, order, err)
}

func (h *OrderController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.Order
	if !c.BindJSON(&input) {
		return
	}
	order, err := h.service.Update(c.Context(), id, input)
	reply(c, order, err)
}

func (h *OrderController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.Delete(c.Context(), id))
}

func (h *OrderController) ByCustomer(c *ctx.Context) {
	id, err := c.ParamUint("customerId")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByCustomer(c.Context(), id)
	reply(c, rows, err)
}

// ByOrderDate matches order_at exactly.
func (h *OrderController) ByOrderDate(c *ctx.Context) {
	at, err := c.ParamTime("orderDate")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByOrderAt(c.Context(), at)
	reply(c, rows, err)
}

func (h *OrderController) OrderedBetween(c *ctx.Context) {
	start, err1 := c.QueryTime("startDate")
	end, err2 := c.QueryTime("endDate")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.OrderedBetween(c.Context(), start, end)
	reply(c, rows, err)
}

func (h *OrderController) ByCustomerOrderedBetween(c *ctx.Context) {
	id, err1 := c.ParamUint("customerId")
	start, err2 := c.ParamTime("startDate")
	end, err3 := c.ParamTime("endDate")
	if err := firstErr(err1, err2, err3); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByCustomerOrderedBetween(c.Context(), id, start, end)
	reply(c, rows, err)
}

func (h *OrderController) ByCustomerName(c *ctx.Context) {
	first, err1 := c.QueryString("firstName")
	last, err2 := c.QueryString("lastName")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByCustomerName(c.Context(), first, last)
	reply(c, rows, err)
}

func (h *OrderController) TotalLessThan(c *ctx.Context) {
	price, err := c.ParamDecimal("price")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.TotalLessThan(c.Context(), price)
	reply(c, rows, err)
}

func (h *OrderController) ByTotalDesc(c *ctx.Context) {
	rows, err := h.service.ByTotalDesc(c.Context())
	reply(c, rows, err)
}
