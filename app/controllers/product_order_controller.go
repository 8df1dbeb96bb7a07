package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

type ProductOrderController struct {
	service *services.ProductOrderService
}

func NewProductOrderController(service *services.ProductOrderService) *ProductOrderController {
	return &ProductOrderController{service: service}
}

func key(c *ctx.Context) (productID, orderID uint, err error) {
	productID, err1 := c.ParamUint("productId")
	orderID, err2 := c.ParamUint("orderId")
	return productID, orderID, firstErr(err1, err2)
}

func (h *ProductOrderController) Index(c *ctx.Context) {
	index(c, h.service.List, h.service.Page)
}

func (h *ProductOrderController) Show(c *ctx.Context) {
	productID, orderID, err := key(c)
	if err != nil {
		c.Fail(err)
		return
	}
	line, err := h.service.Get(c.Context(), productID, orderID)
	reply(c, line, err)
}

func (h *ProductOrderController) Store(c *ctx.Context) {
	var input dto.ProductOrder
	if !c.BindJSON(&input) {
		return
	}
	line, err := h.service.Create(c.Context(), input)
	created(c, line, err)
}

func (h *ProductOrderController) Update(c *ctx.Context) {
	productID, orderID, err := key(c)
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.ProductOrder
	if !c.BindJSON(&input) {
		return
	}
	line, err := h.service.Update(c.Context(), productID, orderID, input)
	reply(c, line, err)
}

func (h *ProductOrderController) Destroy(c *ctx.Context) {
	productID, orderID, err := key(c)
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.Delete(c.Context(), productID, orderID))
}

// ByKey is the list form of Show: an unknown pair yields [] rather than 404.
func (h *ProductOrderController) ByKey(c *ctx.Context) {
	productID, orderID, err := key(c)
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByKey(c.Context(), productID, orderID)
	reply(c, rows, err)
}

func (h *ProductOrderController) ByProduct(c *ctx.Context) {
	id, err := c.ParamUint("productId")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByProduct(c.Context(), id)
	reply(c, rows, err)
}

func (h *ProductOrderController) ByOrder(c *ctx.Context) {
	id, err := c.ParamUint("orderId")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByOrder(c.Context(), id)
	reply(c, rows, err)
}

func (h *ProductOrderController) QuantityGreaterThan(c *ctx.Context) {
	qty, err := c.ParamInt("quantity")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.QuantityGreaterThan(c.Context(), qty)
	reply(c, rows, err)
}

func (h *ProductOrderController) QuantityBetween(c *ctx.Context) {
	lo, err1 := c.QueryInt("min")
	hi, err2 := c.QueryInt("max")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.QuantityBetween(c.Context(), lo, hi)
	reply(c, rows, err)
}

func (h *ProductOrderController) PriceGreaterThan(c *ctx.Context) {
	price, err := c.ParamDecimal("price")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.PriceGreaterThan(c.Context(), price)
	reply(c, rows, err)
}
