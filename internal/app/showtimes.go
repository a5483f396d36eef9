package app

import (
	"errors"
	"net/http"

	"github.com/cinetixhq/cinema-booking-system/api"
	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
)

func toShowtimeResponse(showtime *domain.Showtime) api.ShowtimeResponse {
	return api.ShowtimeResponse{
		Id:             showtime.ID,
		MovieId:        showtime.MovieID,
		MovieTitle:     showtime.MovieTitle,
		TheaterId:      showtime.TheaterID,
		TheaterName:    showtime.TheaterName,
		StartTime:      showtime.StartTime,
		EndTime:        showtime.EndTime,
		Price:          decimal.NewFromFloat(showtime.Price),
		Capacity:       showtime.Capacity,
		AvailableSeats: showtime.AvailableSeats,
		CreatedAt:      showtime.CreatedAt,
	}
}

func (app *Application) GetShowtimes(w http.ResponseWriter, r *http.Request) {
	params, err := app.readShowtimesParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	filters := domain.ShowtimeFilters{
		Pagination: domain.Pagination{Page: 1, PageSize: 20, Sort: "start_time"},
	}
	if params.Page != nil {
		filters.Page = *params.Page
	}
	if params.PageSize != nil {
		filters.PageSize = *params.PageSize
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}
	if params.MovieId != nil {
		filters.MovieID = *params.MovieId
	}
	if params.TheaterId != nil {
		filters.TheaterID = *params.TheaterId
	}
	if params.Date != nil {
		filters.Date = *params.Date
	}

	showtimes, metadata, err := app.showtimeRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		Showtimes: make([]api.ShowtimeResponse, 0, len(showtimes)),
		Metadata:  toApiMetadata(metadata),
	}
	for _, showtime := range showtimes {
		resp.Showtimes = append(resp.Showtimes, toShowtimeResponse(showtime))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) readShowtimesParams(r *http.Request) (api.GetShowtimesParams, error) {
	var params api.GetShowtimesParams
	var err error

	params.MovieId, err = readIntQuery(r, "movieId")
	if err != nil {
		return params, err
	}

	params.TheaterId, err = readIntQuery(r, "theaterId")
	if err != nil {
		return params, err
	}

	params.Date, err = readDateQuery(r, "date")
	if err != nil {
		return params, err
	}

	params.Page, err = readIntQuery(r, "page")
	if err != nil {
		return params, err
	}

	params.PageSize, err = readIntQuery(r, "pageSize")
	if err != nil {
		return params, err
	}

	params.Sort = readStringQuery(r, "sort")

	return params, nil
}

func (app *Application) GetShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetShowtimesByMovie(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	showtimes, err := app.showtimeRepo.GetAllByMovie(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{Showtimes: make([]api.ShowtimeResponse, 0, len(showtimes))}
	for _, showtime := range showtimes {
		resp.Showtimes = append(resp.Showtimes, toShowtimeResponse(showtime))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req api.CreateShowtimeRequest

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

	price, _ := req.Price.Float64()
	if price < 0 {
		app.badRequestResponse(w, r, errors.New("price must not be negative"))
		return
	}

	_, err = app.movieRepo.GetById(r.Context(), req.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	showtime := &domain.Showtime{
		MovieID:   req.MovieId,
		TheaterID: req.TheaterId,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Price:     price,
	}

	err = app.showtimeRepo.Create(r.Context(), showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeSlotTaken):
			app.conflictResponse(w, r, domain.ErrShowtimeSlotTaken.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	var req api.UpdateShowtimeRequest

	err = app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	showtime, err := app.showtimeRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	if req.StartTime != nil {
		showtime.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		showtime.EndTime = *req.EndTime
	}
	if req.Price != nil {
		price, _ := req.Price.Float64()
		if price < 0 {
			app.badRequestResponse(w, r, errors.New("price must not be negative"))
			return
		}
		showtime.Price = price
	}

	if !showtime.EndTime.After(showtime.StartTime) {
		app.badRequestResponse(w, r, errors.New("end time must be after start time"))
		return
	}

	err = app.showtimeRepo.Update(r.Context(), showtime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponse(w, r)
		case errors.Is(err, domain.ErrShowtimeSlotTaken):
			app.conflictResponse(w, r, domain.ErrShowtimeSlotTaken.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, toShowtimeResponse(showtime), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteShowtime(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.showtimeRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrResourceInUse):
			app.conflictResponse(w, r, "Showtime has bookings and cannot be deleted")
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
