package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/beauty-booking/internal/dto"
	"github.com/BruksfildServices01/beauty-booking/internal/httperr"
	"github.com/BruksfildServices01/beauty-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/beauty-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	list     *ucBooking.ListBookings
	create   *ucBooking.CreateBooking
	retrieve *ucBooking.RetrieveBooking
	update   *ucBooking.UpdateBooking
	delete   *ucBooking.DeleteBooking
}

func NewBookingHandler(
	list *ucBooking.ListBookings,
	create *ucBooking.CreateBooking,
	retrieve *ucBooking.RetrieveBooking,
	update *ucBooking.UpdateBooking,
	del *ucBooking.DeleteBooking,
) *BookingHandler {
	return &BookingHandler{
		list:     list,
		create:   create,
		retrieve: retrieve,
		update:   update,
		delete:   del,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	bookings, err := h.list.Execute(c.Request.Context(), caller)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBookings(bookings))
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !httperr.BindJSON(c, &req) {
		return
	}

	start, err := req.Start()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), caller, ucBooking.CreateBookingInput{
		StartTime: start,
		Notes:     req.Notes,
		ServiceID: *req.Service,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.FromBooking(b))
}

// ======================================================
// RETRIEVE
// ======================================================

func (h *BookingHandler) Retrieve(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "booking")
	if !ok {
		return
	}

	b, err := h.retrieve.Execute(c.Request.Context(), caller, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// UPDATE (PUT / PATCH)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "booking")
	if !ok {
		return
	}

	var req dto.ReplaceBookingRequest
	if !httperr.BindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), caller, id, patch)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

func (h *BookingHandler) PartialUpdate(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "booking")
	if !ok {
		return
	}

	// an empty PATCH body is a no-op update
	var req dto.PatchBookingRequest
	if !httperr.BindOptionalJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	b, err := h.update.Execute(c.Request.Context(), caller, id, patch)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "booking")
	if !ok {
		return
	}

	if err := h.delete.Execute(c.Request.Context(), caller, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.NoContent(c)
}
