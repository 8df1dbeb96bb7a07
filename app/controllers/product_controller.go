package controllers

import (
	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

func (h *ProductController) Index(c *ctx.Context) {
	index(c, h.service.List, h.service.Page)
}

func (h *ProductController) Show(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	product, err := h.service.Get(c.Context(), id)
	reply(c, product, err)
}

func (h *ProductController) Store(c *ctx.Context) {
	var input dto.Product
	if !c.BindJSON(&input) {
		return
	}
	product, err := h.service.Create(c.Context(), input)
	created(c, product, err)
}

func (h *ProductController) Update(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	var input dto.Product
	if !c.BindJSON(&input) {
		return
	}
	product, err := h.service.Update(c.Context(), id, input)
	reply(c, product, err)
}

func (h *ProductController) Destroy(c *ctx.Context) {
	id, err := c.ParamUint("id")
	if err != nil {
		c.Fail(err)
		return
	}
	deleted(c, h.service.Delete(c.Context(), id))
}

func (h *ProductController) BySlug(c *ctx.Context) {
	slug, err := c.ParamString("slug")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.BySlug(c.Context(), slug)
	reply(c, rows, err)
}

func (h *ProductController) NameContains(c *ctx.Context) {
	name, err := c.ParamString("name")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.NameContains(c.Context(), name)
	reply(c, rows, err)
}

func (h *ProductController) ByReference(c *ctx.Context) {
	ref, err := c.ParamString("reference")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByReference(c.Context(), ref)
	reply(c, rows, err)
}

func (h *ProductController) PriceBetween(c *ctx.Context) {
	lo, err1 := c.QueryDecimal("minPrice")
	hi, err2 := c.QueryDecimal("maxPrice")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.PriceBetween(c.Context(), lo, hi)
	reply(c, rows, err)
}

func (h *ProductController) PriceLessThan(c *ctx.Context) {
	price, err := c.ParamDecimal("price")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.PriceLessThan(c.Context(), price)
	reply(c, rows, err)
}

func (h *ProductController) ByVAT(c *ctx.Context) {
	vat, err := c.ParamDecimal("vat")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.ByVAT(c.Context(), vat)
	reply(c, rows, err)
}

func (h *ProductController) VATGreaterThan(c *ctx.Context) {
	vat, err := c.ParamDecimal("vat")
	if err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.VATGreaterThan(c.Context(), vat)
	reply(c, rows, err)
}

func (h *ProductController) VATBetween(c *ctx.Context) {
	lo, err1 := c.QueryDecimal("minVat")
	hi, err2 := c.QueryDecimal("maxVat")
	if err := firstErr(err1, err2); err != nil {
		c.Fail(err)
		return
	}
	rows, err := h.service.VATBetween(c.Context(), lo, hi)
	reply(c, rows, err)
}

func (h *ProductController) InStock(c *ctx.Context) {
	rows, err := h.service.InStock(c.Context())
	reply(c, rows, err)
}

func (h *ProductController) ByPriceDesc(c *ctx.Context) {
	rows, err := h.service.ByPriceDesc(c.Context())
	reply(c, rows, err)
}
