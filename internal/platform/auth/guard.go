package auth

import "github.com/google/uuid"

// Authorize reports whether the requesting user owns the record. A record
// with no owner is never authorized.
func Authorize(userID, recordOwnerID uuid.UUID) bool {
	if userID == uuid.Nil || recordOwnerID == uuid.Nil {
		return false
	}
	return userID == recordOwnerID
}
