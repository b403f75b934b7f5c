package domain

// DefaultVolumeDriver is used when a volume spec names no driver.
const DefaultVolumeDriver = "local"

// VolumeSpec holds configuration for creating a volume.
type VolumeSpec struct {
	Name       string
	Driver     string
	DriverOpts map[string]string
	Labels     map[string]string
}

// WithDefaults returns s with the driver defaulted.
func (s VolumeSpec) WithDefaults() VolumeSpec {
	if s.Driver == "" {
		s.Driver = DefaultVolumeDriver
	}
	return s
}

// VolumeInfo is the runtime view of a volume.
type VolumeInfo struct {
	Name       string
	Driver     string
	Mountpoint string
	CreatedAt  string
	Scope      string
	Labels     map[string]string
	Options    map[string]string
}
