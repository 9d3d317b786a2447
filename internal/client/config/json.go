package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/terrabond/terrabond-cli/internal/flagx"
	"github.com/terrabond/terrabond-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "10s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	AuthServiceURL   string         `json:"auth_service_url"`
	UserServiceURL   string         `json:"user_service_url"`
	SocialServiceURL string         `json:"social_service_url"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	SessionDBPath    string         `json:"session_db_path"`
}

// parseJson overlays Config with values loaded from a JSON file resolved via
// the -c/-config flags. If no file is selected, nothing changes. Empty JSON
// fields keep the earlier value; read or unmarshal errors panic (the caller
// may recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.AuthServiceURL != "" {
		cfg.AuthServiceURL = jc.AuthServiceURL
	}
	if jc.UserServiceURL != "" {
		cfg.UserServiceURL = jc.UserServiceURL
	}
	if jc.SocialServiceURL != "" {
		cfg.SocialServiceURL = jc.SocialServiceURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
}
