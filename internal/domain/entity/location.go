package entity

// Governorate is a top-level static geographic reference record.
// The location hierarchy is read-only from the application's perspective.
type Governorate struct {
	ID     int    // Stable reference id, seeded with the schema.
	NameEn string // English display name.
	NameAr string // Arabic display name.
}

// City is a second-level geographic reference record. Every city belongs to
// exactly one governorate.
type City struct {
	ID            int
	GovernorateID int
	NameEn        string
	NameAr        string

	// Governorate is the resolved parent, populated by the repository when
	// the caller needs hierarchy validation or display names.
	Governorate *Governorate
}
