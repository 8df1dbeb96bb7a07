package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

type StockController struct {
	service *services.StockService
}

func NewStockController(service *services.StockService) *StockController {
	return &StockController{service: service}
}

func (h *StockController) Index(c *ctx.Context) {
	index(c, h.service.List, h.service.Page)
}

func (h *StockController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	stock, err := h.service.Get(c.Context(), id)
	reply(c, stock, err)
}

func (h *StockController) Store(c *ctx.Context) {
	var input dto.Stock
	if !c.BindJSON(&input) {
		return
	}
	stock, err := h.service.Create(c.Context(), input)
	created(c, stock, err)
}

func (h *StockController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.Stock
	if !c.BindJSON(&input) {
		return
	}
	stock, err := h.service.Update(c.Context(), id, input)
	reply(c, stock, err)
}

func (h *StockController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.Delete(c.Context(), id))
}

func (h *StockController) ByProduct(c *ctx.Context) {
	id, err := c.ParamUint("productId")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByProduct(c.Context(), id)
	reply(c, rows, err)
}

func (h *StockController) ByQuantity(c *ctx.Context) {
	qty, err := c.ParamInt("quantity")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByQuantity(c.Context(), qty)
	reply(c, rows, err)
}

func (h *StockController) ByProductAndQuantity(c *ctx.Context) {
	id, err1 := c.ParamUint("productId")
	qty, err2 := c.ParamInt("quantity")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByProductAndQuantity(c.Context(), id, qty)
	reply(c, rows, err)
}

func (h *StockController) QuantityGreaterThan(c *ctx.Context) {
	qty, err := c.ParamInt("quantity")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.QuantityGreaterThan(c.Context(), qty)
	reply(c, rows, err)
}

func (h *StockController) ByProductQuantityGreaterThan(c *ctx.Context) {
	id, err1 := c.QueryUint("productId")
	qty, err2 := c.QueryInt("quantity")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByProductQuantityGreaterThan(c.Context(), id, qty)
	reply(c, rows, err)
}

// UpdatedOnDays takes calendar dates; both days are included whole.
func (h *StockController) UpdatedOnDays(c *ctx.Context) {
	start, err1 := c.QueryDate("startDate")
	end, err2 := c.QueryDate("endDate")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.UpdatedOnDays(c.Context(), start, end)
	reply(c, rows, err)
}

func (h *StockController) UpdatedBetween(c *ctx.Context) {
	start, err1 := c.QueryTime("startDate")
	end, err2 := c.QueryTime("endDate")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.UpdatedBetween(c.Context(), start, end)
	reply(c, rows, err)
}

func (h *StockController) ByProductUpdatedBetween(c *ctx.Context) {
	id, err1 := c.QueryUint("productId")
	start, err2 := c.QueryTime("startDate")
	end, err3 := c.QueryTime("endDate")
	if err := firstErr(err1, err2, err3); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByProductUpdatedBetween(c.Context(), id, start, end)
	reply(c, rows, err)
}
