package integration_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var keysToIgnore = map[string]struct{}{
	"timestamp": {},
	"requestId": {},
	"createdAt": {},
	"reference": {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string, cookies []*http.Cookie) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanMap(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		_, ok := keysToIgnore[k]
		return ok
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanMap(m map[string]any) {
	for k := range m {
		if _, ok := keysToIgnore[k]; ok {
			delete(m, k)
			continue
		}
		if nested, ok := m[k].(map[string]any); ok {
			cleanMap(nested)
		}
	}
}

func truncateTables(t testing.TB, db *pgxpool.Pool) {
	_, err := db.Exec(context.Background(),
		`TRUNCATE bookings, showtimes, theaters, movies, users RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

func jsonBody(t testing.TB, v any) io.Reader {
	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(data)
}

// registerAndLogin creates a user through the public API and returns the
// session cookies of a logged-in request.
func registerAndLogin(t testing.TB, testApp *TestApp, email string) []*http.Cookie {
	registerBody := map[string]any{
		"firstName": TestUserFirstName,
		"lastName":  TestUserLastName,
		"email":     email,
		"password":  TestUserPassword,
	}

	req, err := prepareRequest(http.MethodPost, "/users", jsonBody(t, registerBody), nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	return login(t, testApp, email)
}

func login(t testing.TB, testApp *TestApp, email string) []*http.Cookie {
	loginBody := map[string]any{
		"email":    email,
		"password": TestUserPassword,
	}

	req, err := prepareRequest(http.MethodPost, "/users/login", jsonBody(t, loginBody), nil, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	testApp.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	return rec.Result().Cookies()
}

// registerAndLoginAdmin registers a user, promotes it to admin directly in
// the database, and logs in again so the session carries the admin role.
func registerAndLoginAdmin(t testing.TB, testApp *TestApp, email string) []*http.Cookie {
	registerAndLogin(t, testApp, email)

	_, err := testApp.DB.Exec(context.Background(),
		`UPDATE users SET role = 'admin' WHERE email = $1`, email)
	require.NoError(t, err)

	return login(t, testApp, email)
}

func seedMovie(t testing.TB, db *pgxpool.Pool) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO movies (title, description, genre, duration, release_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		TestMovieTitle, TestMovieDescription, TestMovieGenre, TestMovieDuration,
		time.Now().AddDate(0, -1, 0)).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedTheater(t testing.TB, db *pgxpool.Pool, capacity int) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO theaters (name, location, capacity, amenities)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		TestTheaterName, TestTheaterLocation, capacity, []string{"IMAX"}).Scan(&id)
	require.NoError(t, err)

	return id
}

func seedShowtime(t testing.TB, db *pgxpool.Pool, movieID, theaterID int) int {
	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO showtimes (movie_id, theater_id, start_time, end_time, price, capacity, available_seats)
		SELECT $1, $2, $3, $4, $5, t.capacity, t.capacity
		FROM theaters t
		WHERE t.id = $2
		RETURNING id`,
		movieID, theaterID,
		time.Now().Add(24*time.Hour).Truncate(time.Second),
		time.Now().Add(26*time.Hour).Truncate(time.Second),
		TestShowtimePrice).Scan(&id)
	require.NoError(t, err)

	return id
}

func availableSeats(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	var seats int
	err := db.QueryRow(context.Background(),
		`SELECT available_seats FROM showtimes WHERE id = $1`, showtimeID).Scan(&seats)
	require.NoError(t, err)

	return seats
}

func activeTickets(t testing.TB, db *pgxpool.Pool, showtimeID int) int {
	var tickets int
	err := db.QueryRow(context.Background(), `
		SELECT coalesce(sum(number_of_tickets), 0)
		FROM bookings
		WHERE showtime_id = $1 AND status <> 'cancelled'`, showtimeID).Scan(&tickets)
	require.NoError(t, err)

	return tickets
}
