package model

import "time"

// MediaType classifies a media asset
type MediaType string

const (
	MediaTypePhoto   MediaType = "photo"
	MediaTypeVideo   MediaType = "video"
	MediaType3DModel MediaType = "3d model"
	MediaTypeAudio   MediaType = "audio"
	MediaTypeOther   MediaType = "other"
)

// Media represents an image/video/model asset, optionally attached to an
// aircraft. At most one row per aircraft is expected to carry
// IsThumbnail=true; the migrations enforce this with a partial unique index.
type Media struct {
	ID           int        `db:"id" json:"id"`
	AircraftID   *int       `db:"aircraft_id" json:"aircraft_id"`
	MediaType    MediaType  `db:"media_type" json:"media_type"`
	IsThumbnail  bool       `db:"is_thumbnail" json:"is_thumbnail"`
	URL          string     `db:"url" json:"url"`
	Caption      *string    `db:"caption" json:"caption"`
	DateTaken    *time.Time `db:"date_taken" json:"date_taken"`
	Creator      *string    `db:"creator" json:"creator"`
	IsHistorical bool       `db:"is_historical" json:"is_historical"`
}
