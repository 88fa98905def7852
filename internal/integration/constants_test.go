package integration_test

import "github.com/metinatakli/movie-booking-api/internal/domain"

const (
	dbName         = "movie_booking"
	dbUser         = "test_user"
	dbPassword     = "test_password"
	dbImageName    = "postgres:17-alpine"
	cacheImageName = "redis:7"

	testJwtSecret = "integration-test-secret"
)

// Users seeded before every test, in id order.
const (
	AdminUserId = 1
	AliceUserId = 2
	BobUserId   = 3

	TestUserPassword = "Test123!@#"
)

// Catalog rows inserted by testdata/catalog.sql.
const (
	AlienMovieId = 1
	HeatMovieId  = 2

	TwoSeatShowtimeId   = 1
	FiftySeatShowtimeId = 2
	TenSeatShowtimeId   = 3
)

type seedUser struct {
	Nickname string
	Username string
	Email    string
	Role     domain.Role
}

var seedUsers = []seedUser{
	{Nickname: "Admin", Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin},
	{Nickname: "Alice", Username: "alice", Email: "alice@example.com", Role: domain.RoleUser},
	{Nickname: "Bob", Username: "bob", Email: "bob@example.com", Role: domain.RoleUser},
}
