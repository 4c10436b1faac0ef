package seeder

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/haagahelia/hidb-back/internal/config"
	"github.com/haagahelia/hidb-back/internal/model"
)

// Parser reads the catalog seed files. Each file is a CSV with a header
// row; empty cells map to null columns.
type Parser struct {
	dataDir   string
	batchSize int
}

// NewParser creates a new parser instance with config
func NewParser(dataDir string, seederCfg config.SeederConfig) *Parser {
	return &Parser{
		dataDir:   dataDir,
		batchSize: seederCfg.BatchSize,
	}
}

// BatchSize returns the configured insert batch size
func (p *Parser) BatchSize() int {
	return p.batchSize
}

// HasSeedFiles reports whether the data directory holds all three catalog files
func (p *Parser) HasSeedFiles() bool {
	for _, name := range []string{"organizations.csv", "aircraft.csv", "media.csv"} {
		if _, err := os.Stat(filepath.Join(p.dataDir, name)); err != nil {
			return false
		}
	}
	return true
}

// ParseOrganizations parses organizations.csv
// (id,name,type,country,founding_year,logo_url)
func (p *Parser) ParseOrganizations() ([]model.Organization, error) {
	rows, err := p.readCSV("organizations.csv", 6)
	if err != nil {
		return nil, err
	}

	var organizations []model.Organization
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("organizations.csv row %d: bad id %q", i+2, row[0])
		}
		organizations = append(organizations, model.Organization{
			ID:           id,
			Name:         row[1],
			Type:         model.OrganizationType(row[2]),
			Country:      row[3],
			FoundingYear: intPtr(row[4]),
			LogoURL:      strPtr(row[5]),
		})
	}
	return organizations, nil
}

// ParseAircraft parses aircraft.csv
// (id,name,manufacturer,model,year_built,weight,organization_id,
// crew_capacity,passenger_capacity,type,status,museum_location_number,
// display_section,qr_code_url,description)
func (p *Parser) ParseAircraft() ([]model.Aircraft, error) {
	rows, err := p.readCSV("aircraft.csv", 15)
	if err != nil {
		return nil, err
	}

	var aircraft []model.Aircraft
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("aircraft.csv row %d: bad id %q", i+2, row[0])
		}
		yearBuilt, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("aircraft.csv row %d: bad year_built %q", i+2, row[4])
		}
		weight, err := strconv.ParseFloat(row[5], 64)
		if err != nil {
			return nil, fmt.Errorf("aircraft.csv row %d: bad weight %q", i+2, row[5])
		}
		aircraft = append(aircraft, model.Aircraft{
			ID:                   id,
			Name:                 row[1],
			Manufacturer:         row[2],
			Model:                row[3],
			YearBuilt:            yearBuilt,
			Weight:               weight,
			OrganizationID:       intPtr(row[6]),
			CrewCapacity:         intPtr(row[7]),
			PassengerCapacity:    intPtr(row[8]),
			Type:                 model.AircraftType(row[9]),
			Status:               model.AircraftStatus(row[10]),
			MuseumLocationNumber: intPtr(row[11]),
			DisplaySection:       strPtr(row[12]),
			QRCodeURL:            strPtr(row[13]),
			Description:          strPtr(row[14]),
		})
	}
	return aircraft, nil
}

// ParseMedia parses media.csv
// (id,aircraft_id,media_type,is_thumbnail,url,caption,date_taken,creator,is_historical)
func (p *Parser) ParseMedia() ([]model.Media, error) {
	rows, err := p.readCSV("media.csv", 9)
	if err != nil {
		return nil, err
	}

	var media []model.Media
	for i, row := range rows {
		id, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("media.csv row %d: bad id %q", i+2, row[0])
		}
		dateTaken, err := datePtr(row[6])
		if err != nil {
			return nil, fmt.Errorf("media.csv row %d: bad date_taken %q", i+2, row[6])
		}
		media = append(media, model.Media{
			ID:           id,
			AircraftID:   intPtr(row[1]),
			MediaType:    model.MediaType(row[2]),
			IsThumbnail:  parseBool(row[3]),
			URL:          row[4],
			Caption:      strPtr(row[5]),
			DateTaken:    dateTaken,
			Creator:      strPtr(row[7]),
			IsHistorical: parseBool(row[8]),
		})
	}
	return media, nil
}

// readCSV reads all data rows of a seed file, skipping the header
func (p *Parser) readCSV(name string, fields int) ([][]string, error) {
	filePath := filepath.Join(p.dataDir, name)
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = fields

	// Header row
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s header: %w", name, err)
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return rows, nil
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intPtr(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func datePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	}
	return false
}
