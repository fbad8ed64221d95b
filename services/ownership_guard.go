package services

// Action names the operation being authorized.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// OwnershipGuard decides record access. The rule is owner equality and
// nothing else: no admin overrides, no shared grants, no role hierarchy.
// Callers check existence before authorization so "not found" stays
// distinguishable from "forbidden".
type OwnershipGuard struct{}

// Authorize returns nil when callerID owns the record, a Forbidden error
// otherwise.
func (OwnershipGuard) Authorize(callerID, ownerID string, action Action) error {
	if callerID != "" && callerID == ownerID {
		return nil
	}
	return NewForbidden("access denied: not the owner of this resource")
}
