package controllers

import (
	"time"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct{ Svc *services.ReportService }

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Svc: s}
}

// reportRange parses ?from=&to= (YYYY-MM-DD, both inclusive) and defaults to
// the last 30 days.
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if v := c.Query("from"); v != "" {
		t, ok := parseDay(v)
		if !ok {
			resp.BadRequest(c, "invalid from date, want YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, ok := parseDay(v)
		if !ok {
			resp.BadRequest(c, "invalid to date, want YYYY-MM-DD")
			return time.Time{}, time.Time{}, false
		}
		to = t.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		resp.BadRequest(c, "to must not precede from")
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GET /reports/sales?from=&to=&top=
func (h *ReportController) Sales(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	out, err := h.Svc.Sales(from, to, atoiDefault(c.Query("top"), 10))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /reports/procurement?from=&to=
func (h *ReportController) Procurement(c *gin.Context) {
	from, to, ok := reportRange(c)
	if !ok {
		return
	}
	out, err := h.Svc.Procurement(from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
