package app

import (
	"context"

	"github.com/bnema/infradeploy/internal/domain"
)

// ImageRow is the status line of one image.
type ImageRow struct {
	Name    string
	Present bool
	Built   bool
	Tags    []string
	Size    int64
}

// ContainerRow is the status line of one container.
type ContainerRow struct {
	Name    string
	Image   string
	ID      string
	Status  domain.ContainerStatus
	Stats   *domain.ContainerStats
	Problem error
}

// NetworkRow is the status line of one network.
type NetworkRow struct {
	Name       string
	ID         string
	Driver     string
	Containers int
}

// VolumeRow is the status line of one volume.
type VolumeRow struct {
	Name   string
	Driver string
	Exists bool
	Users  int
}

// StatusReport is a point-in-time view of the whole deployment.
type StatusReport struct {
	Images     []ImageRow
	Containers []ContainerRow
	Networks   []NetworkRow
	Volumes    []VolumeRow
	Adopt      domain.BulkResult
}

// Status adopts existing resources and inspects every registered one. Lookup
// failures are folded into the rows instead of failing the report.
func (a *App) Status(ctx context.Context, withStats bool) StatusReport {
	ctx, _ = a.flowCtx(ctx, "Status")

	report := StatusReport{Adopt: a.Adopt(ctx)}

	for _, name := range a.Images.Names() {
		img, ok := a.Images.Get(name)
		if !ok {
			continue
		}
		row := ImageRow{Name: name, Built: img.State().Built}
		if info, err := img.Inspect(ctx); err == nil {
			row.Present = true
			row.Tags = info.RepoTags
			row.Size = info.Size
		}
		report.Images = append(report.Images, row)
	}

	for _, c := range a.Containers.All() {
		row := ContainerRow{Name: c.Name(), ID: c.ID(), Status: domain.ContainerStatusUnknown}
		if img := c.Image(); img != nil {
			row.Image = img.Name()
		}
		if c.Created() {
			info, err := c.Inspect(ctx)
			if err != nil {
				row.Problem = err
			} else {
				row.Status = info.Status
			}
			if withStats && row.Status == domain.ContainerStatusRunning {
				if stats, err := c.ResourceUsage(ctx); err == nil {
					row.Stats = stats
				}
			}
		}
		report.Containers = append(report.Containers, row)
	}

	for _, n := range a.Networks.All() {
		row := NetworkRow{Name: n.Name(), ID: n.ID(), Driver: n.Spec().Driver}
		if n.Created() {
			if ids, err := n.ConnectedContainers(ctx); err == nil {
				row.Containers = len(ids)
			}
		}
		report.Networks = append(report.Networks, row)
	}

	for _, v := range a.Volumes.All() {
		row := VolumeRow{Name: v.Name(), Driver: v.Spec().Driver, Exists: v.Created()}
		if v.Created() {
			if users, err := v.Users(ctx); err == nil {
				row.Users = len(users)
			}
		}
		report.Volumes = append(report.Volumes, row)
	}

	return report
}
