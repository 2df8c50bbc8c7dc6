package pkg

import "github.com/google/uuid"

// GenerateSessionID - returns a unique id for one client connection.
func GenerateSessionID() string {
	return uuid.NewString()
}
