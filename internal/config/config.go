package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is the business identity rendered around every quotation. Defaults
// are compiled in and can be overridden from a YAML profile file.
type Profile struct {
	BrandName    string   `yaml:"brand_name"`
	UPIID        string   `yaml:"upi_id"`
	ContactPhone string   `yaml:"contact_phone"`
	ContactEmail string   `yaml:"contact_email"`
	Zones        []string `yaml:"zones"`
	MarketTicker []string `yaml:"market_ticker"`
}

// DefaultProfile returns the built-in business profile.
func DefaultProfile() Profile {
	return Profile{
		BrandName:    "Ajay Constructions",
		UPIID:        "ajay.t.me@icici",
		ContactPhone: "9703133338",
		ContactEmail: "ajay.t.me@gmail.com",
		Zones: []string{
			"Madhapur", "Gachibowli", "Kukatpally", "Jubilee Hills",
			"Banjara Hills", "Kondapur",
		},
		MarketTicker: []string{
			"UltraTech Cement: ₹415/bag",
			"Vizag TMT 12mm: ₹72,400/ton",
			"Finolex 2.5mm: ₹2,150/coil",
			"Asian Paints Royale: ₹590/Ltr",
			"M-Sand (Cubic Ft): ₹45",
		},
	}
}

// LoadProfile reads a YAML profile from path, layered over the defaults.
// An empty path returns the defaults unchanged.
func LoadProfile(path string) (Profile, error) {
	profile := DefaultProfile()
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file: %w", err)
	}

	if err := yaml.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to parse profile file: %w", err)
	}

	return profile, nil
}
