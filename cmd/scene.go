package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/achilleasa/polaris-bvh/asset/reader"
	"github.com/achilleasa/polaris-bvh/bvh"
	"github.com/achilleasa/polaris-bvh/types"
	"github.com/urfave/cli"
)

var errMissingSceneArg = errors.New("missing scene file argument")

// Flags shared by all commands that build an accelerator.
var AcceleratorFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "max-prims",
		Value: 1,
		Usage: "max primitives per BVH leaf (accepted but currently ignored)",
	},
	cli.StringFlag{
		Name:  "split",
		Value: "naive",
		Usage: "split method: naive or sah (accepted but currently ignored)",
	},
}

// Load the scene passed as the first command argument and build an
// accelerator for it using the command flags.
func loadAccelerator(ctx *cli.Context) (*reader.Scene, []bvh.Primitive, *bvh.Accelerator, error) {
	if ctx.NArg() != 1 {
		return nil, nil, nil, errMissingSceneArg
	}

	splitMethod, err := bvh.ParseSplitMethod(ctx.String("split"))
	if err != nil {
		return nil, nil, nil, err
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return nil, nil, nil, err
	}

	prims := sc.Primitives()
	accel := bvh.New(prims, bvh.Options{
		MaxPrimsInNode: ctx.Int("max-prims"),
		SplitMethod:    splitMethod,
	})
	return sc, prims, accel, nil
}

// Parse a vector specified as "x,y,z".
func parseVec3Arg(name, value string) (types.Vec3, error) {
	tokens := strings.Split(value, ",")
	if len(tokens) != 3 {
		return types.Vec3{}, fmt.Errorf(`invalid value for "%s": expected 3 comma-separated components; got %q`, name, value)
	}

	var v types.Vec3
	for index, token := range tokens {
		coord, err := strconv.ParseFloat(strings.TrimSpace(token), 32)
		if err != nil {
			return types.Vec3{}, fmt.Errorf(`invalid value for "%s": %s`, name, err)
		}
		v[index] = float32(coord)
	}
	return v, nil
}
