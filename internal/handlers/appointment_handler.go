package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VitaplanServices/appointment-scheduler/internal/httperr"
	"github.com/VitaplanServices/appointment-scheduler/internal/middleware"
	"github.com/VitaplanServices/appointment-scheduler/internal/objectid"
	"github.com/VitaplanServices/appointment-scheduler/internal/pagination"
	ucAppointment "github.com/VitaplanServices/appointment-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	listUC   *ucAppointment.ListAppointments
	getUC    *ucAppointment.GetAppointment
	updateUC *ucAppointment.UpdateAppointment
	removeUC *ucAppointment.RemoveAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	getUC *ucAppointment.GetAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	removeUC *ucAppointment.RemoveAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		updateUC: updateUC,
		removeUC: removeUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID   string `json:"providerId" binding:"required"`
	ScheduleDate string `json:"scheduleDate" binding:"required"`
}

type UpdateAppointmentRequest struct {
	ProviderID   string `json:"providerId" binding:"required"`
	ScheduleDate string `json:"scheduleDate" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func paginationFromQuery(c *gin.Context) pagination.Params {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	if limit > pagination.MaxLimit {
		limit = pagination.MaxLimit
	}

	return pagination.Params{Page: page, Limit: limit}
}

func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !objectid.IsValid(id) {
		httperr.BadRequest(c, httperr.ErrMalformedObjectID.Code, httperr.ErrMalformedObjectID.Message)
		return "", false
	}
	return id, true
}

// writeError maps business failures to 400 and everything else to 500.
func writeError(c *gin.Context, err error) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.BadRequest(c, be.Code, be.Message)
		return
	}
	httperr.Internal(c)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !objectid.IsValid(req.ProviderID) {
		httperr.BadRequest(c, httperr.ErrMalformedObjectID.Code, httperr.ErrMalformedObjectID.Message)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		CustomerID:   customerID,
		ProviderID:   req.ProviderID,
		ScheduleDate: req.ScheduleDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	envelope, err := h.listUC.Execute(c.Request.Context(), customerID, paginationFromQuery(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, envelope)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := pathID(c)
	if !ok {
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), id, customerID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !objectid.IsValid(req.ProviderID) {
		httperr.BadRequest(c, httperr.ErrMalformedObjectID.Code, httperr.ErrMalformedObjectID.Message)
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		ID:           id,
		CustomerID:   customerID,
		ProviderID:   req.ProviderID,
		ScheduleDate: req.ScheduleDate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Remove(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(string)

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.removeUC.Execute(c.Request.Context(), id, customerID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
