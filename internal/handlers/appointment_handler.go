package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/neal92/ServiceBooking-sub000/internal/domain/appointment"
	"github.com/neal92/ServiceBooking-sub000/internal/httperr"
	"github.com/neal92/ServiceBooking-sub000/internal/httpresp"
	"github.com/neal92/ServiceBooking-sub000/internal/middleware"
	ucappointment "github.com/neal92/ServiceBooking-sub000/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucappointment.CreateAppointment
	update *ucappointment.UpdateAppointment
	status *ucappointment.UpdateStatus
	remove *ucappointment.DeleteAppointment
	list   *ucappointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucappointment.CreateAppointment,
	update *ucappointment.UpdateAppointment,
	status *ucappointment.UpdateStatus,
	remove *ucappointment.DeleteAppointment,
	list *ucappointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		status: status,
		remove: remove,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientName  string `json:"clientName" binding:"required"`
	ClientEmail string `json:"clientEmail"`
	ClientPhone string `json:"clientPhone"`
	ServiceID   uint   `json:"serviceId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HELPERS
// ======================================================

func requester(c *gin.Context) (domain.Actor, string, *uint) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	role := c.GetString(middleware.ContextUserRole)
	email := c.GetString(middleware.ContextUserEmail)

	actor := domain.ActorClient
	if role == "admin" {
		actor = domain.ActorAdmin
	}
	return actor, email, &userID
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid appointment id.")
		return 0, false
	}
	return uint(id), true
}

// writeBusinessError maps domain error codes onto the HTTP surface.
func writeBusinessError(c *gin.Context, err error) {
	switch code := httperr.BusinessCode(err); code {
	case "appointment_not_found":
		httperr.NotFound(c, code, "Appointment not found.")
	case "slot_taken":
		httperr.Conflict(c, code, "This slot is already taken.")
	case "transition_forbidden", "delete_not_allowed":
		httperr.Forbidden(c, code, "You are not allowed to do that.")
	case "date_in_past", "time_in_past", "invalid_date", "invalid_time",
		"invalid_date_or_time", "invalid_status", "invalid_transition",
		"service_not_found", "service_inactive":
		httperr.BadRequest(c, code, "Invalid appointment data.")
	case "":
		httperr.Internal(c, "internal_error", "Something went wrong.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor, email, userID := requester(c)

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	createdBy := "client"
	if actor == domain.ActorAdmin {
		createdBy = "admin"
	} else if req.ClientEmail == "" {
		// A client books for themselves.
		req.ClientEmail = email
	}

	ap, err := h.create.Execute(c.Request.Context(), ucappointment.CreateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		CreatedBy:   createdBy,
	}, userID)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointmentId": ap.ID})
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	views, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, views)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	view, err := h.list.One(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ListByClient serves /appointments/client?email=. A client may only
// query their own bookings; admins may look up anyone.
func (h *AppointmentHandler) ListByClient(c *gin.Context) {
	actor, ownEmail, _ := requester(c)

	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email is required.")
		return
	}

	if actor != domain.ActorAdmin && email != ownEmail {
		httperr.Forbidden(c, "email_mismatch", "You can only list your own appointments.")
		return
	}

	views, err := h.list.ByClient(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Could not load appointments.")
		return
	}

	httpresp.OK(c, views)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	_, _, userID := requester(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid appointment payload.")
		return
	}

	if _, err := h.update.Execute(c.Request.Context(), id, ucappointment.UpdateAppointmentInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	}, userID); err != nil {
		writeBusinessError(c, err)
		return
	}

	// Re-read so the response carries the joined service fields.
	view, err := h.list.One(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actor, email, userID := requester(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	ap, err := h.status.Execute(
		c.Request.Context(),
		id,
		domain.Status(req.Status),
		actor,
		email,
		userID,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor, email, userID := requester(c)

	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id, actor, email, userID); err != nil {
		writeBusinessError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
