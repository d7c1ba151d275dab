package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	profile := DefaultProfile()
	if profile.BrandName == "" || profile.UPIID == "" {
		t.Error("Default profile must carry a brand and UPI id")
	}
	if len(profile.Zones) == 0 {
		t.Error("Default profile must list location zones")
	}
}

func TestLoadProfileEmptyPathReturnsDefaults(t *testing.T) {
	profile, err := LoadProfile("")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.BrandName != DefaultProfile().BrandName {
		t.Errorf("Expected default brand, got %q", profile.BrandName)
	}
}

func TestLoadProfileOverridesLayerOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.yaml")
	content := "brand_name: Telangana Builders\nupi_id: tb@icici\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}

	profile, err := LoadProfile(path)
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	if profile.BrandName != "Telangana Builders" {
		t.Errorf("Expected overridden brand, got %q", profile.BrandName)
	}
	if profile.UPIID != "tb@icici" {
		t.Errorf("Expected overridden UPI id, got %q", profile.UPIID)
	}
	// Fields absent from the file keep their defaults.
	if profile.ContactPhone != DefaultProfile().ContactPhone {
		t.Errorf("Expected default contact phone, got %q", profile.ContactPhone)
	}
}

func TestLoadProfileMissingFile(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected error for a missing profile file")
	}
}
