package cmd

import (
	"github.com/achilleasa/polaris-bvh/types"
	"github.com/urfave/cli"
)

// Trace a single ray through a scene and report the closest hit.
func ProbeRay(ctx *cli.Context) error {
	setupLogging(ctx)

	origin, err := parseVec3Arg("origin", ctx.String("origin"))
	if err != nil {
		return err
	}
	dir, err := parseVec3Arg("dir", ctx.String("dir"))
	if err != nil {
		return err
	}

	_, _, accel, err := loadAccelerator(ctx)
	if err != nil {
		logger.Error(err)
		return err
	}

	ray := types.NewRay(origin, dir)
	isect := accel.Intersect(ray)
	if !isect.Hit {
		logger.Noticef("ray %v -> %v: no hit", origin, dir)
		return nil
	}

	logger.Noticef(
		"ray %v -> %v: hit at distance %f; point %v; normal %v",
		origin, dir, isect.Distance, isect.Point, isect.Normal,
	)
	return nil
}
