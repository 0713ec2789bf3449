package nscp

import (
	"fmt"
	"sort"
	"strings"
)

// Strong column weak beam requirement for special moment frames.
// NSCP 2015 Section 418.7.3.2 / ACI 318-14 Section 18.7.3.2:
//
//	ΣMnc >= (6/5) ΣMnb
const SCWBFactor = 6.0 / 5.0

// DesignCode identifies a structural code edition that fixes the SCWB factor
type DesignCode struct {
	ID          string
	Description string
	Section     string
	Factor      float64
}

// Codes lists the supported design code presets
var Codes = []DesignCode{
	{
		ID:          "nscp2015",
		Description: "National Structural Code of the Philippines 2015",
		Section:     "418.7.3.2",
		Factor:      SCWBFactor,
	},
	{
		ID:          "aci318",
		Description: "ACI 318-14 Building Code Requirements for Structural Concrete",
		Section:     "18.7.3.2",
		Factor:      SCWBFactor,
	},
}

// DefaultCode is used when no design code is configured
const DefaultCode = "nscp2015"

// Lookup finds a design code by ID (case-insensitive)
func Lookup(id string) (DesignCode, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	if key == "" {
		key = DefaultCode
	}
	for _, c := range Codes {
		if c.ID == key {
			return c, nil
		}
	}
	return DesignCode{}, fmt.Errorf("unknown design code %q (supported: %s)", id, strings.Join(IDs(), ", "))
}

// FactorFor returns the SCWB factor prescribed by a design code
func FactorFor(id string) (float64, error) {
	c, err := Lookup(id)
	if err != nil {
		return 0, err
	}
	return c.Factor, nil
}

// IDs returns the sorted list of supported code IDs
func IDs() []string {
	ids := make([]string, 0, len(Codes))
	for _, c := range Codes {
		ids = append(ids, c.ID)
	}
	sort.Strings(ids)
	return ids
}
