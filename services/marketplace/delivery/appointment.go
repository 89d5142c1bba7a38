package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type appointmentHandler struct {
	auc domain.AppointmentUseCase
}

func NewAppointmentDelivery(router fiber.Router, uc domain.AppointmentUseCase) {
	handler := &appointmentHandler{
		auc: uc,
	}

	route := router.Group("/appointments")
	route.Get("/", handler.ListAppointments)
	route.Get("/:id", handler.GetAppointment)
	route.Post("/", handler.BookAppointment)
	route.Patch("/:id/status", handler.UpdateStatus)
}

func (h *appointmentHandler) ListAppointments(c *fiber.Ctx) error {
	expertID, err := queryInt(c, "expertId")
	if err != nil {
		return respondError(c, "ListAppointments", "Invalid expertId", err)
	}
	parentID, err := queryInt(c, "parentId")
	if err != nil {
		return respondError(c, "ListAppointments", "Invalid parentId", err)
	}

	appts, err := h.auc.List(c.Context(), domain.AppointmentFilter{ExpertID: expertID, ParentID: parentID})
	if err != nil {
		return respondError(c, "ListAppointments", "Failed to retrieve appointments", err)
	}
	return respond(c, fiber.StatusOK, "ListAppointments", "Appointments retrieved successfully", appts)
}

func (h *appointmentHandler) GetAppointment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "GetAppointment", "Invalid appointment id", err)
	}

	appt, err := h.auc.Get(c.Context(), id)
	if err != nil {
		return respondError(c, "GetAppointment", "Failed to retrieve appointment", err)
	}
	return respond(c, fiber.StatusOK, "GetAppointment", "Appointment retrieved successfully", appt)
}

func (h *appointmentHandler) BookAppointment(c *fiber.Ctx) error {
	var req domain.BookingRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "BookAppointment", "Invalid request body")
	}

	appt, err := h.auc.Book(c.Context(), &req)
	if err != nil {
		return respondError(c, "BookAppointment", "Failed to book appointment", err)
	}
	return respond(c, fiber.StatusCreated, "BookAppointment", "Appointment booked successfully", appt)
}

func (h *appointmentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "UpdateAppointmentStatus", "Invalid appointment id", err)
	}

	var req domain.StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "UpdateAppointmentStatus", "Invalid request body")
	}
	if err := domain.ValidateStruct(&req); err != nil {
		return respondError(c, "UpdateAppointmentStatus", "Invalid status", err)
	}

	appt, err := h.auc.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return respondError(c, "UpdateAppointmentStatus", "Failed to update appointment", err)
	}
	return respond(c, fiber.StatusOK, "UpdateAppointmentStatus", "Appointment updated successfully", appt)
}
