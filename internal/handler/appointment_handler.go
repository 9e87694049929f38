package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"client-scheduler/internal/model"
)

func validAppointment(c *gin.Context, a *model.Appointment) bool {
	if a.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title required"})
		return false
	}
	if a.Start.IsZero() || a.End.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "times required"})
		return false
	}
	if !a.End.After(a.Start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be after start"})
		return false
	}
	if a.CustomerID <= 0 || a.UserID <= 0 || a.ContactID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer, user and contact references required"})
		return false
	}
	return true
}

func (h *Handler) ListAppointments(c *gin.Context) {
	apps, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if apps == nil {
		apps = []model.Appointment{}
	}
	c.JSON(http.StatusOK, apps)
}

func (h *Handler) NextAppointmentID(c *gin.Context) {
	id, err := h.store.NextAppointmentID(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextId": id})
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var a model.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if !validAppointment(c, &a) {
		return
	}

	if _, err := h.store.CreateAppointment(c.Request.Context(), &a); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var a model.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	a.ID = id
	if !validAppointment(c, &a) {
		return
	}

	if err := h.store.UpdateAppointment(c.Request.Context(), &a); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteAppointment(c.Request.Context(), id); err != nil {
		h.storeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
