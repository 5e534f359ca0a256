package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/middlewares"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /cart/:terminal/checkout
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Checkout(c.Param("terminal"), uid, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCartEmpty), errors.Is(err, services.ErrOrderNotStarted):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrOrderConsumed), errors.Is(err, services.ErrPaymentDeclined):
			resp.Conflict(c, err.Error())
		default:
			// payment transport or breaker failures: cart stays, retry works
			resp.BadGateway(c, err.Error())
		}
		return
	}
	middlewares.OrdersSubmitted.WithLabelValues(req.Status).Inc()
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": out})
}

// GET /orders?status=&from=&to=&page=&limit=
func (h *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status: c.Query("status"),
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), 20),
	}
	if t, ok := parseDay(c.Query("from")); ok {
		f.From = &t
	}
	if t, ok := parseDay(c.Query("to")); ok {
		end := t.AddDate(0, 0, 1) // inclusive day
		f.To = &end
	}

	items, total, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	out, err := h.Svc.Detail(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req struct {
		Status string `json:"status" binding:"required,oneof=paid completed cancelled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateStatus(uint(id), req.Status); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrBadTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseDay(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
