package bvh

import (
	"fmt"
	"strings"
)

// The strategy for selecting split planes.
type SplitMethod uint8

const (
	// Rotate the split axis per tree level and split at the centroid median.
	SplitNaive SplitMethod = iota

	// Surface area heuristic. Accepted for compatibility; the builder
	// currently treats it like SplitNaive.
	SplitSAH
)

// The upper bound for Options.MaxPrimsInNode.
const maxPrimsInNodeLimit = 255

// Get split method name.
func (m SplitMethod) String() string {
	switch m {
	case SplitNaive:
		return "naive"
	case SplitSAH:
		return "sah"
	}
	return fmt.Sprintf("SplitMethod(%d)", uint8(m))
}

// Parse a split method name (case-insensitive).
func ParseSplitMethod(name string) (SplitMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "naive", "":
		return SplitNaive, nil
	case "sah":
		return SplitSAH, nil
	}
	return SplitNaive, fmt.Errorf("bvh: unknown split method %q", name)
}

// Options configure the accelerator.
//
// Neither option changes the generated tree: the builder always recurses down
// to single-primitive leafs and always uses the rotating-axis median split.
// They are kept so that callers can already express the intended policy.
type Options struct {
	// Maximum number of primitives per leaf. Clamped to [1, 255].
	MaxPrimsInNode int

	// Split plane selection strategy.
	SplitMethod SplitMethod
}

// Get the default accelerator options.
func DefaultOptions() Options {
	return Options{
		MaxPrimsInNode: 1,
		SplitMethod:    SplitNaive,
	}
}

func (o Options) normalize() Options {
	if o.MaxPrimsInNode > maxPrimsInNodeLimit {
		o.MaxPrimsInNode = maxPrimsInNodeLimit
	}
	if o.MaxPrimsInNode < 1 {
		o.MaxPrimsInNode = 1
	}
	return o
}
