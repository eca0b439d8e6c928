package cmd

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Results of comparing BVH queries with a linear scan.
type benchResult struct {
	rays       int
	hits       int
	mismatches int

	bvhTime    time.Duration
	linearTime time.Duration
}

// Trace random rays through a scene using both the BVH and a linear scan and
// compare timings and results.
func Benchmark(ctx *cli.Context) error {
	setupLogging(ctx)

	rayCount := ctx.Int("rays")
	if rayCount <= 0 {
		return fmt.Errorf(`invalid value for "rays": expected a positive number; got %d`, rayCount)
	}

	_, prims, accel, err := loadAccelerator(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	res := runBench(prims, accel, rayCount, ctx.Int64("seed"))
	logger.Noticef("benchmark results\n%s", benchTable(res))

	if res.mismatches != 0 {
		return fmt.Errorf("%d of %d rays returned different results for the BVH and the linear scan", res.mismatches, res.rays)
	}
	return nil
}

// Generate rays that start on a sphere around the scene and point towards
// random points inside the world bounds.
func randomRays(bounds types.AABB, count int, seed int64) []types.Ray {
	rng := rand.New(rand.NewSource(seed))
	center := bounds.Centroid()
	diag := bounds.Diagonal()
	radius := diag.Len() + 1

	rays := make([]types.Ray, count)
	for index := range rays {
		// Uniform direction on the unit sphere
		z := rng.Float32()*2 - 1
		phi := rng.Float64() * 2 * math.Pi
		r := float32(math.Sqrt(float64(1 - z*z)))
		onSphere := types.XYZ(r*float32(math.Cos(phi)), r*float32(math.Sin(phi)), z)

		origin := center.Add(onSphere.Mul(radius))
		target := bounds.Min.Add(diag.MulVec(types.XYZ(rng.Float32(), rng.Float32(), rng.Float32())))
		rays[index] = types.NewRay(origin, target.Sub(origin).Normalize())
	}
	return rays
}

func runBench(prims []bvh.Primitive, accel *bvh.Accelerator, rayCount int, seed int64) benchResult {
	res := benchResult{rays: rayCount}
	if accel.Len() == 0 {
		return res
	}

	rays := randomRays(accel.WorldBound(), rayCount, seed)

	bvhHits := make([]bvh.Intersection, len(rays))
	start := time.Now()
	for index, ray := range rays {
		bvhHits[index] = accel.Intersect(ray)
	}
	res.bvhTime = time.Since(start)

	linearHits := make([]bvh.Intersection, len(rays))
	start = time.Now()
	for index, ray := range rays {
		linearHits[index] = bvh.LinearIntersect(prims, ray)
	}
	res.linearTime = time.Since(start)

	for index := range rays {
		b, l := bvhHits[index], linearHits[index]
		if b.Hit {
			res.hits++
		}
		if b.Hit != l.Hit || (b.Hit && math.Abs(float64(b.Distance-l.Distance)) > 1e-4) {
			res.mismatches++
		}
	}
	return res
}

func benchTable(res benchResult) string {
	perRay := func(d time.Duration) string {
		if res.rays == 0 {
			return "-"
		}
		return (d / time.Duration(res.rays)).String()
	}
	speedup := "-"
	if res.bvhTime > 0 {
		speedup = fmt.Sprintf("%.1fx", float64(res.linearTime)/float64(res.bvhTime))
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Method", "Total time", "Time per ray"})
	table.Append([]string{"BVH", res.bvhTime.String(), perRay(res.bvhTime)})
	table.Append([]string{"Linear scan", res.linearTime.String(), perRay(res.linearTime)})
	table.SetFooter([]string{"", "Speedup", speedup})
	table.Render()

	buf.WriteString(fmt.Sprintf("rays: %d, hits: %d, mismatches: %d\n", res.rays, res.hits, res.mismatches))
	return buf.String()
}
