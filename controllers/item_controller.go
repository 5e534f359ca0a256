package controllers

import (
	"errors"
	"strconv"

	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ItemController struct{ Svc *services.ItemService }

func NewItemController(s *services.ItemService) *ItemController { return &ItemController{Svc: s} }

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		resp.BadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GET /menu and GET /items share this handler; /menu pins available=true so
// the browsing screen never sees hidden items.
func (h *ItemController) list(c *gin.Context, menuOnly bool) {
	f := repository.ItemFilter{
		Search: c.Query("search"),
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), 20),
	}
	if v := c.Query("categoryId"); v != "" {
		if id, err := strconv.ParseUint(v, 10, 64); err == nil {
			cid := uint(id)
			f.CategoryID = &cid
		}
	}
	if menuOnly {
		av := true
		f.Available = &av
	} else if v := c.Query("available"); v != "" {
		av := v == "true"
		f.Available = &av
	}

	items, total, err := h.Svc.List(f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "total": total, "page": f.Page, "limit": f.Limit})
}

func (h *ItemController) Menu(c *gin.Context) { h.list(c, true) }
func (h *ItemController) List(c *gin.Context) { h.list(c, false) }

// GET /items/:id
func (h *ItemController) Detail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	it, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, it)
}

type itemIn struct {
	Name           string `json:"name" binding:"required"`
	Detail         string `json:"detail"`
	Price          int64  `json:"price" binding:"min=0"`
	Picture        string `json:"picture"`
	Available      *bool  `json:"available"`
	ItemCategoryID uint   `json:"itemCategoryId" binding:"required"`
}

// POST /items
func (h *ItemController) Create(c *gin.Context) {
	var req itemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it := entity.Item{
		Name: req.Name, Detail: req.Detail, Price: req.Price,
		Picture: req.Picture, ItemCategoryID: req.ItemCategoryID, Available: true,
	}
	if req.Available != nil {
		it.Available = *req.Available
	}
	if err := h.Svc.Create(&it); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, it)
}

// PATCH /items/:id
func (h *ItemController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	it, err := h.Svc.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	var req itemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	it.Name = req.Name
	it.Detail = req.Detail
	it.Price = req.Price
	it.Picture = req.Picture
	it.ItemCategoryID = req.ItemCategoryID
	if req.Available != nil {
		it.Available = *req.Available
	}
	if err := h.Svc.Update(it); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.BadRequest(c, "category not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, it)
}

// PATCH /items/:id/availability
func (h *ItemController) SetAvailability(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetAvailability(id, *req.Available); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"available": *req.Available})
}

// DELETE /items/:id
func (h *ItemController) Delete(c *gin.Context) {
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
