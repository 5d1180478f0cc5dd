package config

// mauriceFile represents the structure of the .maurice.yaml configuration
// file.
type mauriceFile struct {
	Version     string         `yaml:"version"`
	Cache       cacheDTO       `yaml:"cache"`
	Fingerprint fingerprintDTO `yaml:"fingerprint"`
}

// cacheDTO configures the entry store location.
type cacheDTO struct {
	Dir string `yaml:"dir"`
}

// fingerprintDTO configures the fingerprint engine.
type fingerprintDTO struct {
	Algorithm   string `yaml:"algorithm"`
	SortRows    *bool  `yaml:"sortRows"`
	SortColumns *bool  `yaml:"sortColumns"`
}
