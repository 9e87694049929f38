package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"client-scheduler/internal/model"
)

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.store.ListCustomers(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) NextCustomerID(c *gin.Context) {
	id, err := h.store.NextCustomerID(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"nextId": id})
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var cu model.Customer
	if err := c.ShouldBindJSON(&cu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	if cu.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	if _, err := h.store.CreateCustomer(c.Request.Context(), &cu); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, cu)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var cu model.Customer
	if err := c.ShouldBindJSON(&cu); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	cu.ID = id

	if err := h.store.UpdateCustomer(c.Request.Context(), &cu); err != nil {
		h.storeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cu)
}

func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteCustomer(c.Request.Context(), id); err != nil {
		h.storeErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
