package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/cart"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

func terminalID(c *gin.Context) string {
	return c.Param("terminal")
}

func itemIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid item id")
		return 0, false
	}
	return uint(id), true
}

// GET /cart/:terminal
func (h *CartController) Get(c *gin.Context) {
	v, err := h.Svc.Get(terminalID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// POST /cart/:terminal/items
func (h *CartController) AddItem(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := h.Svc.AddItem(terminalID(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "item not found")
		case errors.Is(err, services.ErrItemUnavailable), errors.Is(err, cart.ErrInvalidQty):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": v})
}

// PATCH /cart/:terminal/items/:itemId/increase
func (h *CartController) Increase(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	v, err := h.Svc.IncreaseQty(terminalID(c), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// PATCH /cart/:terminal/items/:itemId/decrease
func (h *CartController) Decrease(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	v, err := h.Svc.DecreaseQty(terminalID(c), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart/:terminal/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	id, ok := itemIDParam(c)
	if !ok {
		return
	}
	v, err := h.Svc.RemoveItem(terminalID(c), id)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, v)
}

// DELETE /cart/:terminal
func (h *CartController) Clear(c *gin.Context) {
	if err := h.Svc.Clear(terminalID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

// POST /cart/:terminal/order
func (h *CartController) BeginOrder(c *gin.Context) {
	var req services.BeginOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, err := h.Svc.BeginOrder(terminalID(c), &req)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": ctx})
}

// PATCH /cart/:terminal/order/table
func (h *CartController) BindTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"tableNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ctx, err := h.Svc.BindTable(terminalID(c), req.TableNumber)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ctx)
}

// DELETE /cart/:terminal/order
func (h *CartController) ResetOrder(c *gin.Context) {
	if err := h.Svc.ResetOrder(terminalID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"reset": true})
}
