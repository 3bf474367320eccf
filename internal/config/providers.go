package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProvidersConfig represents the optional providers.yaml file. It overrides
// upstream base URLs and per-kind timeouts, which is mostly useful for
// pointing the proxy at mirrors or at stubs during integration testing.
type ProvidersConfig struct {
	Endpoints EndpointOverrides `yaml:"endpoints"`
	Timeouts  map[string]int    `yaml:"timeouts"` // data kind -> seconds
}

// EndpointOverrides holds per-host base URL overrides. Empty fields keep the
// built-in default.
type EndpointOverrides struct {
	APIBase       string `yaml:"api_base"`       // api.nasa.gov
	EONETBase     string `yaml:"eonet_base"`     // eonet.gsfc.nasa.gov
	ImagesBase    string `yaml:"images_base"`    // images-api.nasa.gov
	PowerBase     string `yaml:"power_base"`     // power.larc.nasa.gov
	SSDBase       string `yaml:"ssd_base"`       // ssd-api.jpl.nasa.gov
	OSDRBase      string `yaml:"osdr_base"`      // osdr.nasa.gov
	CMRBase       string `yaml:"cmr_base"`       // cmr.earthdata.nasa.gov
	ExoplanetBase string `yaml:"exoplanet_base"` // exoplanetarchive.ipac.caltech.edu
	GIBSBase      string `yaml:"gibs_base"`      // gibs.earthdata.nasa.gov
}

// LoadProviders loads the YAML provider configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "providers.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadProviders() (*ProvidersConfig, error) {
	path := getEnv("CONFIG_FILE", "providers.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg ProvidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
