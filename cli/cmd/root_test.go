// ABOUTME: Tests for root command configuration
// ABOUTME: Verifies API URL resolution precedence

package cmd

import "testing"

func TestGetAPIURL_Default(t *testing.T) {
	t.Setenv("STUDY_API_URL", "")
	apiURL = ""

	if got := GetAPIURL(); got != defaultAPIURL {
		t.Errorf("Expected default URL %q, got %q", defaultAPIURL, got)
	}
}

func TestGetAPIURL_EnvOverridesDefault(t *testing.T) {
	t.Setenv("STUDY_API_URL", "http://api.example.com:9090")
	apiURL = ""

	if got := GetAPIURL(); got != "http://api.example.com:9090" {
		t.Errorf("Expected env URL, got %q", got)
	}
}

func TestGetAPIURL_FlagOverridesEnv(t *testing.T) {
	t.Setenv("STUDY_API_URL", "http://env.example.com")
	apiURL = "http://flag.example.com"
	defer func() { apiURL = "" }()

	if got := GetAPIURL(); got != "http://flag.example.com" {
		t.Errorf("Expected flag URL, got %q", got)
	}
}
