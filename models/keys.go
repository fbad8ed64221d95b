package models

// Key layout for the single-table design. Every record lives under a typed
// partition key; children share the parent's partition and are addressed by
// sort key. GSI1 indexes ownership (properties) and email uniqueness (users).
const (
	PropertyKeyPrefix = "PROPERTY#"
	UserKeyPrefix     = "USER#"
	LoanKeyPrefix     = "LOAN#"
	OwnerKeyPrefix    = "OWNER#"
	EmailKeyPrefix    = "EMAIL#"

	SortKeyMetadata = "METADATA"
	SortKeyFinance  = "FINANCE"
	SortKeyProfile  = "PROFILE"

	GSI1Name = "GSI1"
)

// PropertyPK builds the partition key for a property and its children.
func PropertyPK(propertyID string) string {
	return PropertyKeyPrefix + propertyID
}

// UserPK builds the partition key for a user profile.
func UserPK(userID string) string {
	return UserKeyPrefix + userID
}

// LoanSK builds the sort key for a loan under its property partition.
func LoanSK(loanID string) string {
	return LoanKeyPrefix + loanID
}

// OwnerGSI1PK builds the GSI1 partition key grouping properties by owner.
func OwnerGSI1PK(ownerID string) string {
	return OwnerKeyPrefix + ownerID
}

// EmailGSI1PK builds the GSI1 partition key locating a user by email.
func EmailGSI1PK(email string) string {
	return EmailKeyPrefix + email
}
