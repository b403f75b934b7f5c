package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/docker/go-connections/nat"

	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/bytesize"
	"github.com/bnema/infradeploy/pkg/duration"
	"github.com/bnema/infradeploy/pkg/validation"
)

// Deployment is the descriptor of every resource infradeploy manages.
//
// Key/value settings are written as "key=value" lists because viper folds
// map keys to lower case and splits them on dots.
type Deployment struct {
	Networks   []NetworkDescriptor   `mapstructure:"networks"`
	Volumes    []VolumeDescriptor    `mapstructure:"volumes"`
	Images     []ImageDescriptor     `mapstructure:"images"`
	Containers []ContainerDescriptor `mapstructure:"containers"`
}

// NetworkDescriptor describes one network.
type NetworkDescriptor struct {
	Name       string   `mapstructure:"name"`
	Driver     string   `mapstructure:"driver"`
	Internal   bool     `mapstructure:"internal"`
	Attachable bool     `mapstructure:"attachable"`
	EnableIPv6 bool     `mapstructure:"enable_ipv6"`
	Subnet     string   `mapstructure:"subnet"`
	Gateway    string   `mapstructure:"gateway"`
	IPRange    string   `mapstructure:"ip_range"`
	Labels     []string `mapstructure:"labels"`
	Options    []string `mapstructure:"options"`
}

// VolumeDescriptor describes one named volume.
type VolumeDescriptor struct {
	Name       string   `mapstructure:"name"`
	Driver     string   `mapstructure:"driver"`
	DriverOpts []string `mapstructure:"driver_opts"`
	Labels     []string `mapstructure:"labels"`
}

// ImageDescriptor describes one image. An empty build_context means the
// image is pulled.
type ImageDescriptor struct {
	Name         string   `mapstructure:"image_name"`
	BuildContext string   `mapstructure:"build_context"`
	Tag          string   `mapstructure:"tag"`
	Dockerfile   string   `mapstructure:"dockerfile"`
	BuildArgs    []string `mapstructure:"build_args"`
}

// ContainerDescriptor describes one container.
type ContainerDescriptor struct {
	Name        string   `mapstructure:"container_name"`
	Image       string   `mapstructure:"image"`
	Command     []string `mapstructure:"command"`
	Env         []string `mapstructure:"env"`
	Ports       []string `mapstructure:"ports"`   // "hostPort:containerPort[/proto]"
	Volumes     []string `mapstructure:"volumes"` // "source:/container/path"
	Networks    []string `mapstructure:"networks"`
	WorkingDir  string   `mapstructure:"working_dir"`
	Memory      string   `mapstructure:"memory"`
	StopTimeout string   `mapstructure:"stop_timeout"`
	Restart     string   `mapstructure:"restart"`
	Labels      []string `mapstructure:"labels"`
}

// DeploymentSpecs holds a validated descriptor converted to domain specs.
type DeploymentSpecs struct {
	Networks   []domain.NetworkSpec
	Volumes    []domain.VolumeSpec
	Images     []domain.ImageSpec
	Containers []ContainerPlan
}

// ContainerPlan pairs a container spec with the image it runs.
type ContainerPlan struct {
	Name  string
	Image string
	Spec  domain.ContainerSpec
}

// Specs validates the descriptor and converts it. All problems are reported
// together, each wrapping domain.ErrInvalidConfig.
func (d Deployment) Specs() (DeploymentSpecs, error) {
	var (
		out  DeploymentSpecs
		errs []error
	)
	invalid := func(kind, name string, err error) {
		errs = append(errs, fmt.Errorf("%w: %s %q: %w", domain.ErrInvalidConfig, kind, name, err))
	}

	for _, n := range d.Networks {
		spec, err := n.spec()
		if err != nil {
			invalid("network", n.Name, err)
			continue
		}
		out.Networks = append(out.Networks, spec)
	}

	for _, v := range d.Volumes {
		spec, err := v.spec()
		if err != nil {
			invalid("volume", v.Name, err)
			continue
		}
		out.Volumes = append(out.Volumes, spec)
	}

	images := make(map[string]bool, len(d.Images))
	for _, i := range d.Images {
		spec, err := i.spec()
		if err != nil {
			invalid("image", i.Name, err)
			continue
		}
		images[spec.Name] = true
		out.Images = append(out.Images, spec)
	}

	for _, c := range d.Containers {
		plan, err := c.plan()
		if err != nil {
			invalid("container", c.Name, err)
			continue
		}
		if !images[plan.Image] {
			invalid("container", c.Name, fmt.Errorf("image %q is not declared", plan.Image))
			continue
		}
		out.Containers = append(out.Containers, plan)
	}

	return out, errors.Join(errs...)
}

func (n NetworkDescriptor) spec() (domain.NetworkSpec, error) {
	if err := validation.ValidateResourceName(n.Name); err != nil {
		return domain.NetworkSpec{}, err
	}
	labels, err := keyValues(n.Labels)
	if err != nil {
		return domain.NetworkSpec{}, err
	}
	opts, err := keyValues(n.Options)
	if err != nil {
		return domain.NetworkSpec{}, err
	}

	spec := domain.NetworkSpec{
		Name:       n.Name,
		Driver:     n.Driver,
		Internal:   n.Internal,
		Attachable: n.Attachable,
		EnableIPv6: n.EnableIPv6,
		Labels:     labels,
		Options:    opts,
	}
	if n.Subnet != "" || n.Gateway != "" || n.IPRange != "" {
		spec.IPAM = &domain.IPAMSpec{
			Pools: []domain.IPAMPool{{Subnet: n.Subnet, Gateway: n.Gateway, IPRange: n.IPRange}},
		}
	}
	return spec.WithDefaults(), nil
}

func (v VolumeDescriptor) spec() (domain.VolumeSpec, error) {
	if err := validation.ValidateResourceName(v.Name); err != nil {
		return domain.VolumeSpec{}, err
	}
	opts, err := keyValues(v.DriverOpts)
	if err != nil {
		return domain.VolumeSpec{}, err
	}
	labels, err := keyValues(v.Labels)
	if err != nil {
		return domain.VolumeSpec{}, err
	}
	return domain.VolumeSpec{
		Name:       v.Name,
		Driver:     v.Driver,
		DriverOpts: opts,
		Labels:     labels,
	}.WithDefaults(), nil
}

func (i ImageDescriptor) spec() (domain.ImageSpec, error) {
	if err := validation.ValidateImageReference(i.Name); err != nil {
		return domain.ImageSpec{}, err
	}
	if i.Tag != "" {
		if err := validation.ValidateImageReference(i.Tag); err != nil {
			return domain.ImageSpec{}, fmt.Errorf("tag: %w", err)
		}
	}
	args, err := keyValues(i.BuildArgs)
	if err != nil {
		return domain.ImageSpec{}, err
	}

	spec := domain.ImageSpec{
		Name:       i.Name,
		BuildTag:   i.Tag,
		Dockerfile: i.Dockerfile,
		BuildArgs:  args,
	}
	if i.BuildContext != "" {
		dir, err := validation.ValidateBuildContext(i.BuildContext)
		if err != nil {
			return domain.ImageSpec{}, err
		}
		spec.BuildPath = dir
	}
	return spec, nil
}

func (c ContainerDescriptor) plan() (ContainerPlan, error) {
	if err := validation.ValidateResourceName(c.Name); err != nil {
		return ContainerPlan{}, err
	}
	if c.Image == "" {
		return ContainerPlan{}, fmt.Errorf("image is required")
	}

	env, err := keyValues(c.Env)
	if err != nil {
		return ContainerPlan{}, fmt.Errorf("env: %w", err)
	}
	labels, err := keyValues(c.Labels)
	if err != nil {
		return ContainerPlan{}, fmt.Errorf("labels: %w", err)
	}
	ports, err := portPairs(c.Ports)
	if err != nil {
		return ContainerPlan{}, err
	}
	volumes, err := volumePairs(c.Volumes)
	if err != nil {
		return ContainerPlan{}, err
	}

	spec := domain.ContainerSpec{
		Name:          c.Name,
		Cmd:           c.Command,
		Env:           env,
		Ports:         ports,
		Volumes:       volumes,
		Labels:        labels,
		WorkingDir:    c.WorkingDir,
		RestartPolicy: c.Restart,
		Networks:      c.Networks,
	}
	if c.Memory != "" {
		if spec.MemoryLimit, err = bytesize.Parse(c.Memory); err != nil {
			return ContainerPlan{}, fmt.Errorf("memory: %w", err)
		}
	}
	if spec.StopTimeout, err = duration.ParseOptional(c.StopTimeout); err != nil {
		return ContainerPlan{}, fmt.Errorf("stop_timeout: %w", err)
	}

	return ContainerPlan{Name: c.Name, Image: c.Image, Spec: spec}, nil
}

func keyValues(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}

// portPairs converts "host:container[/proto]" entries into a
// containerPort -> hostPort map. A bare "container" port publishes on a
// random host port. A container port may be published once; host IP
// bindings ("ip:host:container") are not supported.
func portPairs(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(entries))
	seen := make(map[string]string, len(entries))
	for _, entry := range entries {
		parts := strings.Split(entry, ":")
		var host, container string
		switch len(parts) {
		case 1:
			container = parts[0]
		case 2:
			host, container = parts[0], parts[1]
		default:
			return nil, fmt.Errorf("invalid port mapping %q: host IP bindings are not supported, expected host:container", entry)
		}

		proto, port := nat.SplitProtoPort(container)
		if port == "" {
			return nil, fmt.Errorf("invalid port mapping %q: missing container port", entry)
		}
		if _, err := nat.ParsePort(port); err != nil {
			return nil, fmt.Errorf("invalid port mapping %q: %w", entry, err)
		}
		if _, err := nat.ParsePort(host); err != nil {
			return nil, fmt.Errorf("invalid port mapping %q: %w", entry, err)
		}

		binding := port + "/" + proto
		if prev, dup := seen[binding]; dup {
			return nil, fmt.Errorf("container port %s is published twice (%q and %q)", binding, prev, entry)
		}
		seen[binding] = entry
		out[container] = host
	}
	return out, nil
}

// volumePairs converts "source:/target" entries into a source -> target map.
// Each source and each target may appear once.
func volumePairs(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(entries))
	targets := make(map[string]string, len(entries))
	for _, entry := range entries {
		source, target, ok := strings.Cut(entry, ":")
		if !ok || source == "" || !strings.HasPrefix(target, "/") {
			return nil, fmt.Errorf("invalid volume mount %q, expected source:/path", entry)
		}
		if prev, dup := out[source]; dup {
			return nil, fmt.Errorf("volume source %q is mounted twice (%s and %s)", source, prev, target)
		}
		if prev, dup := targets[target]; dup {
			return nil, fmt.Errorf("mount target %s is used by both %q and %q", target, prev, source)
		}
		out[source] = target
		targets[target] = source
	}
	return out, nil
}
