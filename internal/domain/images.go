package domain

// ImageState records which of the realizing operations succeeded for an image.
type ImageState struct {
	Pulled bool
	Built  bool
	Tagged bool
}

// Available reports whether the image exists locally, either pulled or built.
func (s ImageState) Available() bool {
	return s.Pulled || s.Built
}

// ImageSpec describes an image tracked by the image manager.
type ImageSpec struct {
	Name       string
	BuildPath  string            // build context directory, empty if the image is pull-only
	BuildTag   string            // defaults to Name
	Dockerfile string            // relative to BuildPath, defaults to "Dockerfile"
	BuildArgs  map[string]string // passed as --build-arg
}

// Tag returns the tag used when building, falling back to the image name.
func (s ImageSpec) Tag() string {
	if s.BuildTag != "" {
		return s.BuildTag
	}
	return s.Name
}

// ImageInfo is the runtime metadata of an image.
type ImageInfo struct {
	ID           string
	RepoTags     []string
	RepoDigests  []string
	Created      string
	Size         int64
	Architecture string
	OS           string
	Labels       map[string]string
}

// ImageStatus is a point-in-time view of a tracked image.
type ImageStatus struct {
	Name      string
	BuildPath string
	State     ImageState
	Tags      []string
}
