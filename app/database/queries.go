package database

import "github.com/google/uuid"

// validUUID guards the by-id queries. Postgres rejects malformed uuid text
// with a syntax error, which would surface as a server error; a malformed id
// is just an id that does not exist.
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
