package models

// Property statuses
const (
	PropertyStatusActive = "active"
	PropertyStatusVacant = "vacant"
)

// DefaultPropertyType is applied when a create payload omits the type.
const DefaultPropertyType = "residential"

// User account statuses
const (
	UserStatusActive = "active"
)
