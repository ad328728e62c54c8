package models

// Owned is any record with a single owning user.
type Owned interface {
	OwnerID() uint
}

// CanMutate reports whether callerID may update or delete resource.
func CanMutate(callerID uint, resource Owned) bool {
	if callerID == 0 || resource == nil {
		return false
	}
	return resource.OwnerID() == callerID
}
