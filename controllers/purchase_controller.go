package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PurchaseController struct{ Svc *services.PurchaseService }

func NewPurchaseController(s *services.PurchaseService) *PurchaseController {
	return &PurchaseController{Svc: s}
}

// POST /purchases
func (h *PurchaseController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req services.CreatePurchaseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.Create(uid, &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "supplier not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": out})
}

// GET /purchases?supplierId=&page=&limit=
func (h *PurchaseController) List(c *gin.Context) {
	page := atoiDefault(c.Query("page"), 1)
	limit := atoiDefault(c.Query("limit"), 20)

	var supplierID *uint
	if v := c.Query("supplierId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			sid := uint(id)
			supplierID = &sid
		}
	}

	items, total, err := h.Svc.List(supplierID, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /purchases/:id
func (h *PurchaseController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "purchase not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}
