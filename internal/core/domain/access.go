package domain

// CanAccess decides whether the requester may act on a resource owned by
// ownerID. Admins are always allowed; everyone else only reaches their own
// resources. A nil owner means a guest-owned resource, reachable by admins only.
func CanAccess(requesterID uint, requesterRole string, ownerID *uint) bool {
	if requesterRole == RoleAdmin {
		return true
	}
	return ownerID != nil && *ownerID == requesterID
}
