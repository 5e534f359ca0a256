package controllers

import (
	"errors"

	"backend/entity"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TableController struct{ Svc *services.TableService }

func NewTableController(s *services.TableService) *TableController {
	return &TableController{Svc: s}
}

// GET /tables
func (h *TableController) List(c *gin.Context) {
	out, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

type tableIn struct {
	Number string `json:"number" binding:"required"`
	Seats  int    `json:"seats" binding:"min=0"`
}

// POST /tables
func (h *TableController) Create(c *gin.Context) {
	var req tableIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	t := entity.Table{Number: req.Number, Seats: req.Seats}
	if err := h.Svc.Create(&t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, t)
}

// PATCH /tables/:id
func (h *TableController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	t, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "table not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req struct {
		Number   *string `json:"number"`
		Seats    *int    `json:"seats"`
		Occupied *bool   `json:"occupied"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Number != nil {
		t.Number = *req.Number
	}
	if req.Seats != nil {
		t.Seats = *req.Seats
	}
	if req.Occupied != nil {
		t.Occupied = *req.Occupied
	}
	if err := h.Svc.Update(t); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, t)
}

// DELETE /tables/:id
func (h *TableController) Delete(c *gin.Context) {
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
