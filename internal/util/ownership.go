package util

// IsOwner is the one ownership predicate used by every mutating operation:
// the caller may act on a resource only when it owns the resource (or its parent course).
func IsOwner(callerID, ownerID string) bool {
	return callerID != "" && callerID == ownerID
}
