package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CustomerController struct{ Svc *services.CustomerService }

func NewCustomerController(s *services.CustomerService) *CustomerController {
	return &CustomerController{Svc: s}
}

// GET /customers?search=&page=&limit=
func (h *CustomerController) List(c *gin.Context) {
	page := atoiDefault(c.Query("page"), 1)
	limit := atoiDefault(c.Query("limit"), 20)
	items, total, err := h.Svc.List(c.Query("search"), page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": page, "limit": limit})
}

// GET /customers/:id
func (h *CustomerController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cu, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "customer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cu)
}

type customerIn struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// POST /customers
func (h *CustomerController) Create(c *gin.Context) {
	var req customerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cu := entity.Customer{Name: req.Name, Address: req.Address, Contact: req.Contact}
	if err := h.Svc.Create(&cu); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, cu)
}

// PATCH /customers/:id
func (h *CustomerController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	cu, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "customer not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req customerIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cu.Name = req.Name
	cu.Address = req.Address
	cu.Contact = req.Contact
	if err := h.Svc.Update(cu); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cu)
}

// DELETE /customers/:id
func (h *CustomerController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
