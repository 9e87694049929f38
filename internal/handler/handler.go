package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"client-scheduler/internal/auth"
	"client-scheduler/internal/middleware"
	"client-scheduler/internal/store"
)

type Handler struct {
	store  *store.Store
	auth   *auth.Authenticator
	secret string
	log    *zap.Logger
}

func New(st *store.Store, a *auth.Authenticator, secret string, log *zap.Logger) *Handler {
	return &Handler{store: st, auth: a, secret: secret, log: log}
}

// Register wires all routes. Login sits outside the token check and behind
// the rate limiter; everything else requires a session token.
func (h *Handler) Register(r *gin.Engine, rl *middleware.RateLimiter) {
	r.POST("/auth/login", middleware.RateLimit(rl), h.Login)

	api := r.Group("/api", middleware.Auth(h.secret))

	api.GET("/customers", h.ListCustomers)
	api.GET("/customers/next-id", h.NextCustomerID)
	api.POST("/customers", h.CreateCustomer)
	api.PUT("/customers/:id", h.UpdateCustomer)
	api.DELETE("/customers/:id", h.DeleteCustomer)

	api.GET("/appointments", h.ListAppointments)
	api.GET("/appointments/next-id", h.NextAppointmentID)
	api.POST("/appointments", h.CreateAppointment)
	api.PUT("/appointments/:id", h.UpdateAppointment)
	api.DELETE("/appointments/:id", h.DeleteAppointment)

	api.GET("/contacts", h.ListContacts)
	api.POST("/contacts", h.CreateContact)
	api.PUT("/contacts/:id", h.UpdateContact)
	api.DELETE("/contacts/:id", h.DeleteContact)
	api.GET("/contacts/:id/appointments", h.ContactAppointments)

	api.GET("/divisions", h.ListDivisions)
	api.GET("/countries", h.ListCountries)

	api.GET("/reports/by-type", h.ReportByType)
	api.GET("/reports/by-month", h.ReportByMonth)
	api.GET("/reports/by-customer", h.ReportByCustomer)
}

// storeErr maps repository failures onto responses. Database trouble is kept
// distinguishable from validation and auth failures so the client can show a
// targeted message.
func (h *Handler) storeErr(c *gin.Context, err error) {
	if errors.Is(err, store.ErrEmptyTable) {
		c.JSON(http.StatusConflict, gin.H{"error": "no existing ids to allocate from"})
		return
	}
	var dae *store.DataAccessError
	if errors.As(err, &dae) {
		h.log.Error("store operation failed", zap.String("op", dae.Op), zap.Error(dae.Err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database error"})
		return
	}
	h.log.Error("unexpected error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
