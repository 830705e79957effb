package utils

import "github.com/google/uuid"

// GenerateID returns a new document id for server-generated entities.
func GenerateID() string {
	return uuid.New().String()
}

// IsUUID checks if the string is a valid UUID
func IsUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
