package model

// OrganizationType classifies the entity that owns or operated aircraft
type OrganizationType string

const (
	OrganizationTypeAirline       OrganizationType = "airline"
	OrganizationTypeMilitary      OrganizationType = "military"
	OrganizationTypeBorderGuard   OrganizationType = "border_guard"
	OrganizationTypePostalService OrganizationType = "postal_service"
	OrganizationTypeCommercial    OrganizationType = "commercial"
	OrganizationTypeOther         OrganizationType = "other"
)

// Organization represents an entity that owns/operates aircraft in the catalog
type Organization struct {
	ID           int              `db:"id" json:"id"`
	Name         string           `db:"name" json:"name"`
	Type         OrganizationType `db:"type" json:"type"`
	Country      string           `db:"country" json:"country"`
	FoundingYear *int             `db:"founding_year" json:"founding_year"`
	LogoURL      *string          `db:"logo_url" json:"logo_url"`
}
