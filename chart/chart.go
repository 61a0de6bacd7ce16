package chart

import (
	"context"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/clusterlab/annealgo/blobstore"
	"github.com/clusterlab/annealgo/dataset"
)

// Renderer draws the profile of a single cluster to w.
type Renderer interface {
	// RenderCluster draws the rows of ds listed in members as one chart.
	RenderCluster(w io.Writer, ds *dataset.Dataset, members []uint32, title string) error
}

// LineRenderer renders cluster profiles as line charts. One line per member
// row, dataset columns on the X axis. The zero value renders 800x400 PNGs.
type LineRenderer struct {
	// Width and Height of the chart canvas. Zero values default to
	// 8x4 inches.
	Width, Height vg.Length

	// Format is the image format ("png", "svg", "pdf"). Empty means "png".
	Format string
}

func (r *LineRenderer) size() (vg.Length, vg.Length) {
	w, h := r.Width, r.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 4 * vg.Inch
	}
	return w, h
}

func (r *LineRenderer) format() string {
	if r.Format == "" {
		return "png"
	}
	return r.Format
}

// RenderCluster draws one line per member row across the dataset columns.
func (r *LineRenderer) RenderCluster(w io.Writer, ds *dataset.Dataset, members []uint32, title string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "column"
	p.Y.Label.Text = "value"

	for _, row := range members {
		vals := ds.Row(int(row))
		xys := make(plotter.XYs, len(vals))
		for i, v := range vals {
			xys[i].X = float64(i)
			xys[i].Y = float64(v)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("build line for row %d: %w", row, err)
		}
		p.Add(line)
	}

	width, height := r.size()
	wt, err := p.WriterTo(width, height, r.format())
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}

// RenderClusters writes one chart per cluster into store. The blob for
// cluster k is named "<prefix><k>.<format>", e.g. "charts/cluster-3.png".
// Empty clusters are skipped.
func RenderClusters(ctx context.Context, store blobstore.Store, r *LineRenderer, ds *dataset.Dataset, clusters [][]uint32, prefix string) error {
	if r == nil {
		r = &LineRenderer{}
	}
	for k, members := range clusters {
		if len(members) == 0 {
			continue
		}
		name := fmt.Sprintf("%s%d.%s", prefix, k, r.format())
		blob, err := store.Create(ctx, name)
		if err != nil {
			return fmt.Errorf("create chart blob %q: %w", name, err)
		}
		title := fmt.Sprintf("Cluster %d (%d rows)", k, len(members))
		if err := r.RenderCluster(blob, ds, members, title); err != nil {
			blob.Close()
			return err
		}
		if err := blob.Close(); err != nil {
			return fmt.Errorf("close chart blob %q: %w", name, err)
		}
	}
	return nil
}
