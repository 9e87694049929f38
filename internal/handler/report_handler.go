package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"client-scheduler/internal/report"
)

func (h *Handler) ReportByType(c *gin.Context) {
	apps, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report.CountByType(apps))
}

func (h *Handler) ReportByMonth(c *gin.Context) {
	apps, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report.CountByMonth(apps))
}

func (h *Handler) ReportByCustomer(c *gin.Context) {
	ctx := c.Request.Context()
	apps, err := h.store.ListAppointments(ctx)
	if err != nil {
		h.storeErr(c, err)
		return
	}
	customers, err := h.store.ListCustomers(ctx)
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report.CountByCustomer(apps, customers))
}
