package integration_test

import "github.com/metinatakli/cinema-booking/internal/domain"

const (
	dbName         = "cinema"
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
	TestAdminPassword = "Admin123!@#"

	// Show related constants
	TestMovie = "Inception"
	TestDay   = domain.Friday
	TestTime  = domain.Evening
)

var testHall = domain.HallLayout{Rows: 2, Seats: 2, Price: 100}
