package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierController struct{ Svc *services.SupplierService }

func NewSupplierController(s *services.SupplierService) *SupplierController {
	return &SupplierController{Svc: s}
}

// GET /suppliers
func (h *SupplierController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type supplierIn struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// POST /suppliers
func (h *SupplierController) Create(c *gin.Context) {
	var req supplierIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sp := entity.Supplier{Name: req.Name, Contact: req.Contact, Address: req.Address}
	if err := h.Svc.Create(&sp); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, sp)
}

// PATCH /suppliers/:id
func (h *SupplierController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	sp, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "supplier not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req supplierIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	sp.Name = req.Name
	sp.Contact = req.Contact
	sp.Address = req.Address
	if err := h.Svc.Update(sp); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, sp)
}

// DELETE /suppliers/:id
func (h *SupplierController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		if errors.Is(err, services.ErrSupplierInUse) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
