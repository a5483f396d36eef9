// Package api defines the request and response types of the HTTP surface.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,alpha,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,alpha,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type AlreadyLoggedInResponse struct {
	Message string `json:"message"`
}

type CreateMovieRequest struct {
	Title       string    `json:"title" validate:"required,max=100"`
	Description string    `json:"description" validate:"required,max=1000"`
	Genre       string    `json:"genre" validate:"required,genre"`
	Duration    int       `json:"duration" validate:"required,min=1"`
	ReleaseDate time.Time `json:"releaseDate" validate:"required"`
	PosterUrl   string    `json:"posterUrl" validate:"omitempty,url"`
	Rating      float64   `json:"rating" validate:"min=0,max=10"`
	Featured    bool      `json:"featured"`
}

type UpdateMovieRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=1000"`
	Genre       *string    `json:"genre" validate:"omitempty,genre"`
	Duration    *int       `json:"duration" validate:"omitempty,min=1"`
	ReleaseDate *time.Time `json:"releaseDate"`
	PosterUrl   *string    `json:"posterUrl" validate:"omitempty,url"`
	Rating      *float64   `json:"rating" validate:"omitempty,min=0,max=10"`
	Featured    *bool      `json:"featured"`
}

type MovieResponse struct {
	Id          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"`
	ReleaseDate time.Time `json:"releaseDate"`
	PosterUrl   string    `json:"posterUrl"`
	Rating      float64   `json:"rating"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type CreateTheaterRequest struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Location  string   `json:"location" validate:"required,max=200"`
	Capacity  int      `json:"capacity" validate:"required,min=1"`
	Amenities []string `json:"amenities" validate:"dive,amenity"`
}

type UpdateTheaterRequest struct {
	Name      *string   `json:"name" validate:"omitempty,max=100"`
	Location  *string   `json:"location" validate:"omitempty,max=200"`
	Amenities *[]string `json:"amenities" validate:"omitempty,dive,amenity"`
}

type TheaterResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	Amenities []string  `json:"amenities"`
	CreatedAt time.Time `json:"createdAt"`
}

type TheaterListResponse struct {
	Theaters []TheaterResponse `json:"theaters"`
}

type CreateShowtimeRequest struct {
	MovieId   int             `json:"movieId" validate:"required,min=1"`
	TheaterId int             `json:"theaterId" validate:"required,min=1"`
	StartTime time.Time       `json:"startTime" validate:"required"`
	EndTime   time.Time       `json:"endTime" validate:"required,gtfield=StartTime"`
	Price     decimal.Decimal `json:"price" validate:"required"`
}

type UpdateShowtimeRequest struct {
	StartTime *time.Time       `json:"startTime"`
	EndTime   *time.Time       `json:"endTime"`
	Price     *decimal.Decimal `json:"price"`
}

type ShowtimeResponse struct {
	Id             int             `json:"id"`
	MovieId        int             `json:"movieId"`
	MovieTitle     string          `json:"movieTitle"`
	TheaterId      int             `json:"theaterId"`
	TheaterName    string          `json:"theaterName"`
	StartTime      time.Time       `json:"startTime"`
	EndTime        time.Time       `json:"endTime"`
	Price          decimal.Decimal `json:"price"`
	Capacity       int             `json:"capacity"`
	AvailableSeats int             `json:"availableSeats"`
	CreatedAt      time.Time       `json:"createdAt"`
}

type ShowtimeListResponse struct {
	Showtimes []ShowtimeResponse `json:"showtimes"`
	Metadata  *Metadata          `json:"metadata,omitempty"`
}

type GetShowtimesParams struct {
	MovieId   *int       `validate:"omitempty,min=1"`
	TheaterId *int       `validate:"omitempty,min=1"`
	Date      *time.Time `validate:"omitempty"`
	Page      *int       `validate:"omitempty,min=1"`
	PageSize  *int       `validate:"omitempty,min=1,max=100"`
	Sort      *string    `validate:"omitempty,oneof=id start_time price -id -start_time -price"`
}

type CreateBookingRequest struct {
	ShowtimeId      int `json:"showtimeId" validate:"required,min=1"`
	NumberOfTickets int `json:"numberOfTickets" validate:"required,min=1"`
}

type BookingResponse struct {
	Id              int             `json:"id"`
	Reference       string          `json:"reference"`
	ShowtimeId      int             `json:"showtimeId"`
	MovieTitle      string          `json:"movieTitle"`
	TheaterName     string          `json:"theaterName"`
	StartTime       time.Time       `json:"startTime"`
	NumberOfTickets int             `json:"numberOfTickets"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Metadata *Metadata         `json:"metadata,omitempty"`
}

type GetBookingsParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Sort     *string `validate:"omitempty,oneof=id title release_date -id -title -release_date"`
	Term     *string `validate:"omitempty,max=100"`
}
