package catalog

import (
	"embed"
	"encoding/json"
	"fmt"

	"medifind/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

//go:embed doctors.json
var seedFS embed.FS

// Load reads the embedded doctor seed and verifies it is usable. The catalog
// stands in for an external doctor provider; a broken seed should fail the
// boot, not surface later as an empty directory.
func Load() ([]entity.Doctor, error) {
	data, err := seedFS.ReadFile("doctors.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read doctor seed: %w", err)
	}

	var doctors []entity.Doctor
	if err := json.Unmarshal(data, &doctors); err != nil {
		return nil, fmt.Errorf("failed to parse doctor seed: %w", err)
	}

	if len(doctors) == 0 {
		return nil, fmt.Errorf("doctor seed is empty")
	}

	seen := make(map[string]bool, len(doctors))
	for _, doctor := range doctors {
		if doctor.ID == "" {
			return nil, fmt.Errorf("doctor seed contains a record without an id")
		}
		if seen[doctor.ID] {
			return nil, fmt.Errorf("doctor seed contains duplicate id %s", doctor.ID)
		}
		seen[doctor.ID] = true
	}

	logrus.Infof("Doctor catalog loaded with %d doctors", len(doctors))

	return doctors, nil
}
