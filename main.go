package main

import (
	"os"

	"github.com/achilleasa/polaris-bvh/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "polaris-bvh"
	app.Usage = "build and query bounding volume hierarchies for ray tracing"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build a BVH for a scene and print tree statistics",
			Description: `
Parse the triangles of a wavefront obj file (local path or http/https URL),
partition them into a BVH tree and display node counts, depth and build time.`,
			ArgsUsage: "scene_file.obj",
			Flags:     cmd.AcceleratorFlags,
			Action:    cmd.ShowStats,
		},
		{
			Name:        "probe",
			Usage:       "trace a single ray through a scene",
			Description: `Build a BVH for the scene and report the closest intersection for a ray.`,
			ArgsUsage:   "scene_file.obj",
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "origin, o",
					Value: "0,0,0",
					Usage: "ray origin as x,y,z",
				},
				cli.StringFlag{
					Name:  "dir, d",
					Value: "0,0,-1",
					Usage: "ray direction as x,y,z",
				},
			}, cmd.AcceleratorFlags...),
			Action: cmd.ProbeRay,
		},
		{
			Name:  "bench",
			Usage: "compare BVH queries against a linear scan",
			Description: `
Trace random rays through the scene using both the BVH and a brute-force scan
over all primitives. Reports timings and fails if any results differ.`,
			ArgsUsage: "scene_file.obj",
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "rays, n",
					Value: 10000,
					Usage: "number of rays to trace",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "random seed for ray generation",
				},
			}, cmd.AcceleratorFlags...),
			Action: cmd.Benchmark,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
