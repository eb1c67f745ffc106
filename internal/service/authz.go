package service

// CanModify is the ownership predicate used by every mutating
// endpoint: the caller must own the resource or hold the admin role.
func CanModify(callerID, ownerID string, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return callerID != "" && callerID == ownerID
}
