package cmd

import (
	"bytes"
	"fmt"

	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build a BVH for a scene and display its statistics.
func ShowStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, _, accel, err := loadAccelerator(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	logger.Noticef("BVH statistics for %q (%d meshes)\n%s", ctx.Args().First(), len(sc.Meshes), statsTable(accel))
	return nil
}

// Render accelerator statistics as a table.
func statsTable(accel *bvh.Accelerator) string {
	stats := accel.Stats()
	opts := accel.Options()

	leafDepths := 0
	accel.Walk(func(node bvh.Node, depth int) bool {
		if node.IsLeaf() {
			leafDepths += depth
		}
		return true
	})
	avgLeafDepth := 0.0
	if stats.Leafs > 0 {
		avgLeafDepth = float64(leafDepths) / float64(stats.Leafs)
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Primitives", fmt.Sprint(stats.Primitives)})
	table.Append([]string{"Internal nodes", fmt.Sprint(stats.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprint(stats.Leafs)})
	table.Append([]string{"Max depth", fmt.Sprint(stats.MaxDepth)})
	table.Append([]string{"Avg leaf depth", fmt.Sprintf("%.2f", avgLeafDepth)})
	table.Append([]string{"Build time", stats.BuildTime.String()})
	table.Append([]string{"World bounds", fmtBounds(accel.WorldBound())})
	table.Append([]string{"Split method", opts.SplitMethod.String()})
	table.Append([]string{"Max prims in node", fmt.Sprint(opts.MaxPrimsInNode)})
	table.Render()

	return buf.String()
}

func fmtBounds(bbox types.AABB) string {
	if bbox.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%v - %v", bbox.Min, bbox.Max)
}
