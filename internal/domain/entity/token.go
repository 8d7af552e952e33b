package entity

import "time"

// BlacklistedToken records a JWT that was invalidated by logout. Entries are
// append only; presence alone makes the token unusable.
type BlacklistedToken struct {
	Token     string
	CreatedAt time.Time
}
