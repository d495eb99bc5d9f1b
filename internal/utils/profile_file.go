package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/wendler/internal/models"
)

// LoadProfileFile reads a profile written in TOML, e.g.
//
//	start_date = "2024-01-01"
//	unit_system = "imperial"
//	weight_display = "total"
//
//	[one_rep_maxes]
//	squat = 300
//
//	[[schedule]]
//	day = "Monday"
//	lift = "squat"
func LoadProfileFile(path string) (*models.UserProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var record models.ProfileRecord
	if err := toml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("invalid TOML format: %w", err)
	}

	profile := record.Profile()
	return &profile, nil
}

func SaveProfileFile(path string, profile *models.UserProfile) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(profile.Record()); err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return nil
}
