package app

import (
	"errors"
	"net/http"

	"github.com/cinetixhq/cinema-booking-system/api"
	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:              booking.ID,
		Reference:       booking.Reference,
		ShowtimeId:      booking.ShowtimeID,
		MovieTitle:      booking.MovieTitle,
		TheaterName:     booking.TheaterName,
		StartTime:       booking.StartTime,
		NumberOfTickets: booking.NumberOfTickets,
		TotalPrice:      decimal.NewFromFloat(booking.TotalPrice),
		Status:          string(booking.Status),
		CreatedAt:       booking.CreatedAt,
	}
}

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), req.ShowtimeId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	totalPrice, _ := decimal.NewFromFloat(showtime.Price).
		Mul(decimal.NewFromInt(int64(req.NumberOfTickets))).
		Float64()

	booking := &domain.Booking{
		Reference:       uuid.New().String(),
		UserID:          app.contextGetUserId(r),
		ShowtimeID:      showtime.ID,
		MovieTitle:      showtime.MovieTitle,
		TheaterName:     showtime.TheaterName,
		StartTime:       showtime.StartTime,
		NumberOfTickets: req.NumberOfTickets,
		TotalPrice:      totalPrice,
		Status:          domain.BookingConfirmed,
	}

	err = app.bookingRepo.CreateWithReservation(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrInsufficientCapacity):
			app.badRequestResponse(w, r, domain.ErrInsufficientCapacity)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if booking.UserID != app.contextGetUserId(r) && app.contextGetUserRole(r) != domain.RoleAdmin {
		app.unauthorizedAccessResponse(w, r)
		return
	}

	err = app.bookingRepo.CancelWithRelease(r.Context(), booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrAlreadyCancelled):
			app.badRequestResponse(w, r, domain.ErrAlreadyCancelled)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	// Bookings are private. Report not found rather than confirming the
	// booking exists to a user who does not own it.
	if booking.UserID != app.contextGetUserId(r) && app.contextGetUserRole(r) != domain.RoleAdmin {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponse(booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readBookingsPagination(w, r)
	if err != nil {
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAllByUserId(r.Context(), app.contextGetUserId(r), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookingList(w, r, bookings, metadata)
}

func (app *Application) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	pagination, err := app.readBookingsPagination(w, r)
	if err != nil {
		return
	}

	bookings, metadata, err := app.bookingRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.writeBookingList(w, r, bookings, metadata)
}

// readBookingsPagination parses and validates the shared list parameters.
// It writes the error response itself; callers just return on error.
func (app *Application) readBookingsPagination(w http.ResponseWriter, r *http.Request) (domain.Pagination, error) {
	var params api.GetBookingsParams
	var err error

	params.Page, err = readIntQuery(r, "page")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.Pagination{}, err
	}

	params.PageSize, err = readIntQuery(r, "pageSize")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return domain.Pagination{}, err
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return domain.Pagination{}, err
	}

	pagination := domain.Pagination{Page: 1, PageSize: 20, Sort: "-id"}
	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination, nil
}

func (app *Application) writeBookingList(w http.ResponseWriter, r *http.Request, bookings []*domain.Booking, metadata *domain.Metadata) {
	resp := api.BookingListResponse{
		Bookings: make([]api.BookingResponse, 0, len(bookings)),
		Metadata: toApiMetadata(metadata),
	}
	for _, booking := range bookings {
		resp.Bookings = append(resp.Bookings, toBookingResponse(booking))
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
