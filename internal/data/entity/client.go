package entity

// Client is deduplicated by email; contact info is refreshed on every new
// booking under the same address.
type Client struct {
	Base
	Email          string  `db:"email"`
	FirstName      string  `db:"first_name"`
	LastName       string  `db:"last_name"`
	Phone          *string `db:"phone"`
	Nationality    *string `db:"nationality"`
	DocumentNumber *string `db:"document_number"`
}
