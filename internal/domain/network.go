package domain

// DefaultNetworkDriver is used when a network spec names no driver.
const DefaultNetworkDriver = "bridge"

// IPAMPool is one address pool of an IPAM configuration.
type IPAMPool struct {
	Subnet       string
	IPRange      string
	Gateway      string
	AuxAddresses map[string]string
}

// IPAMSpec configures address management for a network.
type IPAMSpec struct {
	Driver  string
	Options map[string]string
	Pools   []IPAMPool
}

// NetworkSpec holds configuration for creating a network.
type NetworkSpec struct {
	Name       string
	Driver     string
	Attachable bool
	Internal   bool
	Ingress    bool
	EnableIPv6 bool
	IPAM       *IPAMSpec
	Labels     map[string]string
	Options    map[string]string
}

// WithDefaults returns s with the driver defaulted.
func (s NetworkSpec) WithDefaults() NetworkSpec {
	if s.Driver == "" {
		s.Driver = DefaultNetworkDriver
	}
	return s
}

// NetworkInfo represents network configuration and state.
type NetworkInfo struct {
	ID         string
	Name       string
	Driver     string
	Internal   bool
	Attachable bool
	Ingress    bool
	EnableIPv6 bool
	Containers []string // IDs of attached containers
	Labels     map[string]string
}
