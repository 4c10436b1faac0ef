package model

// AircraftType classifies an aircraft record
type AircraftType string

const (
	AircraftTypeMilitary        AircraftType = "military"
	AircraftTypeCommercial      AircraftType = "commercial"
	AircraftTypeGeneralAviation AircraftType = "general aviation"
	AircraftTypeCargo           AircraftType = "cargo"
	AircraftTypeRotorcraft      AircraftType = "rotorcraft"
	AircraftTypeOther           AircraftType = "other"
)

// AircraftStatus describes where an aircraft currently is in the collection
type AircraftStatus string

const (
	AircraftStatusOnDisplay        AircraftStatus = "on display"
	AircraftStatusInStorage        AircraftStatus = "in storage"
	AircraftStatusUnderRestoration AircraftStatus = "under restoration"
	AircraftStatusLoaned           AircraftStatus = "loaned"
	AircraftStatusDecommissioned   AircraftStatus = "decommissioned"
)

// Aircraft represents one physical/historical aircraft in the catalog.
// ThumbnailURL and ThumbnailCaption are not stored on the row; they are
// populated by the read-time left join against the media table.
type Aircraft struct {
	ID                   int            `db:"id" json:"id"`
	Name                 string         `db:"name" json:"name"`
	Manufacturer         string         `db:"manufacturer" json:"manufacturer"`
	Model                string         `db:"model" json:"model"`
	YearBuilt            int            `db:"year_built" json:"year_built"`
	Weight               float64        `db:"weight" json:"weight"`
	OrganizationID       *int           `db:"organization_id" json:"organization_id"`
	CrewCapacity         *int           `db:"crew_capacity" json:"crew_capacity"`
	PassengerCapacity    *int           `db:"passenger_capacity" json:"passenger_capacity"`
	Type                 AircraftType   `db:"type" json:"type"`
	Status               AircraftStatus `db:"status" json:"status"`
	MuseumLocationNumber *int           `db:"museum_location_number" json:"museum_location_number"`
	DisplaySection       *string        `db:"display_section" json:"display_section"`
	QRCodeURL            *string        `db:"qr_code_url" json:"qr_code_url"`
	Description          *string        `db:"description" json:"description"`

	ThumbnailURL     *string `db:"thumbnail_url" json:"thumbnail_url"`
	ThumbnailCaption *string `db:"thumbnail_caption" json:"thumbnail_caption"`
}
