package integration_test

const (
	dbName         = "cinema_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	// User related constants
	TestUserFirstName = "John"
	TestUserLastName  = "Doe"
	TestUserEmail     = "test@example.com"
	TestUserPassword  = "Test123!@#"
	TestAdminEmail    = "admin@example.com"

	// Catalog related constants
	TestMovieTitle       = "Test Movie"
	TestMovieDescription = "A test movie description."
	TestMovieGenre       = "Action"
	TestMovieDuration    = 120
	TestTheaterName      = "Test Theater"
	TestTheaterLocation  = "123 Main Street"
	TestTheaterCapacity  = 100
	TestShowtimePrice    = "12.50"
)
