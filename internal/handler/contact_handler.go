package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"client-scheduler/internal/model"
	"client-scheduler/internal/report"
	"client-scheduler/internal/store"
)

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.store.ListContacts(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) CreateContact(c *gin.Context) {
	var ct model.Contact
	if err := c.ShouldBindJSON(&ct); err != nil || ct.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	// contacts keep the legacy allocate-then-insert flow: the client learns
	// the id before the row exists
	ctx := c.Request.Context()
	id, err := h.store.NextContactID(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrEmptyTable) {
			h.storeErr(c, err)
			return
		}
		// first contact ever: no maximum to build on
		id = 1
	}
	ct.ID = id

	if err := h.store.InsertContact(ctx, &ct); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, ct)
}

func (h *Handler) UpdateContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var ct model.Contact
	if err := c.ShouldBindJSON(&ct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	ct.ID = id

	if err := h.store.UpdateContact(c.Request.Context(), &ct); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteContact(c.Request.Context(), id); err != nil {
		h.storeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ContactAppointments is the drill-down view: every appointment booked with
// the selected contact.
func (h *Handler) ContactAppointments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	apps, err := h.store.ListAppointments(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, report.ForContact(apps, id))
}
