package domain

// Label keys stamped on every resource created by infradeploy.
const (
	LabelManaged  = "infradeploy.managed"
	LabelResource = "infradeploy.resource"
	LabelName     = "infradeploy.name"
)

// ManagedLabels returns user labels plus the infradeploy ownership labels.
func ManagedLabels(kind ResourceKind, name string, user map[string]string) map[string]string {
	labels := make(map[string]string, len(user)+3)
	for k, v := range user {
		labels[k] = v
	}
	labels[LabelManaged] = "true"
	labels[LabelResource] = string(kind)
	labels[LabelName] = name
	return labels
}

// IsManagedBy reports whether labels mark a resource created by infradeploy
// under the given name.
func IsManagedBy(labels map[string]string, kind ResourceKind, name string) bool {
	return labels[LabelManaged] == "true" &&
		labels[LabelResource] == string(kind) &&
		labels[LabelName] == name
}
