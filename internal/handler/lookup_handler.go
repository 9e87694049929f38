package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"client-scheduler/internal/model"
)

func (h *Handler) ListDivisions(c *gin.Context) {
	divisions, err := h.store.ListDivisions(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if divisions == nil {
		divisions = []model.Division{}
	}
	c.JSON(http.StatusOK, divisions)
}

func (h *Handler) ListCountries(c *gin.Context) {
	countries, err := h.store.ListCountries(c.Request.Context())
	if err != nil {
		h.storeErr(c, err)
		return
	}
	if countries == nil {
		countries = []model.Country{}
	}
	c.JSON(http.StatusOK, countries)
}
