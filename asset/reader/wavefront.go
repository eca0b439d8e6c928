package reader

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/achilleasa/polaris-bvh/asset"
	"github.com/achilleasa/polaris-bvh/geometry"
	"github.com/achilleasa/polaris-bvh/log"
	"github.com/achilleasa/polaris-bvh/types"
)

// Statements that carry no geometry and are skipped by the reader.
var ignoredStatements = map[string]struct{}{
	"vn":     {},
	"vt":     {},
	"vp":     {},
	"s":      {},
	"l":      {},
	"p":      {},
	"mtllib": {},
	"usemtl": {},
}

type wavefrontSceneReader struct {
	logger log.Logger

	// The parsed scene.
	scene *Scene

	// Parsed vertex coordinates.
	vertexList []types.Vec3

	// Number of skipped statements by keyword.
	skipped map[string]int
}

// Create a new wavefront scene reader.
func newWavefrontReader() *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger:     log.New("wavefront scene reader"),
		scene:      &Scene{},
		vertexList: make([]types.Vec3, 0),
		skipped:    make(map[string]int),
	}
}

// Read scene definition.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	for keyword, count := range r.skipped {
		r.logger.Debugf(`skipped %d "%s" statement(s)`, count, keyword)
	}

	r.pruneEmptyMeshes()
	r.logger.Noticef(
		"parsed scene in %d ms (%d meshes, %d triangles)",
		time.Since(start).Nanoseconds()/1e6,
		len(r.scene.Meshes), r.scene.TriangleCount(),
	)
	return r.scene, nil
}

// Generate an error annotated with the file and line number.
func (r *wavefrontSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	return fmt.Errorf("wavefront: %s:%d: %s", file, line, fmt.Sprintf(msgFormat, args...))
}

// Parse wavefront object scene format.
func (r *wavefrontSceneReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}
			r.vertexList = append(r.vertexList, v)
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			r.scene.Meshes = append(r.scene.Meshes, &Mesh{Name: lineTokens[1]})
		case "f":
			triList, err := r.parseFace(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err)
			}

			// If no object has been defined create a default one
			if len(r.scene.Meshes) == 0 {
				r.scene.Meshes = append(r.scene.Meshes, &Mesh{Name: "default"})
			}

			mesh := r.scene.Meshes[len(r.scene.Meshes)-1]
			mesh.Triangles = append(mesh.Triangles, triList...)
		default:
			if _, ok := ignoredStatements[lineTokens[0]]; !ok {
				return r.emitError(res.Path(), lineNum, `unsupported statement "%s"`, lineTokens[0])
			}
			r.skipped[lineTokens[0]]++
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err)
	}
	return nil
}

// Drop meshes without any faces.
func (r *wavefrontSceneReader) pruneEmptyMeshes() {
	meshes := r.scene.Meshes[:0]
	for _, mesh := range r.scene.Meshes {
		if len(mesh.Triangles) == 0 {
			r.logger.Warningf(`mesh "%s" has no faces; skipping`, mesh.Name)
			continue
		}
		meshes = append(meshes, mesh)
	}
	r.scene.Meshes = meshes
}

// Parse a face definition. Faces with more than 3 vertices are triangulated
// as a fan around the first vertex. Only the vertex index of each face
// argument (v, v/vt, v//vn or v/vt/vn) is used.
func (r *wavefrontSceneReader) parseFace(lineTokens []string) ([]*geometry.Triangle, error) {
	if len(lineTokens) < 4 {
		return nil, fmt.Errorf(`unsupported syntax for "f"; expected at least 3 arguments; got %d`, len(lineTokens)-1)
	}

	vertices := make([]types.Vec3, len(lineTokens)-1)
	expIndices := 0
	for arg := range vertices {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return nil, fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		// Faces must at least define a vertex coord
		if vTokens[0] == "" {
			return nil, fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], len(r.vertexList))
		if err != nil {
			return nil, fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = r.vertexList[vOffset]
	}

	triList := make([]*geometry.Triangle, 0, len(vertices)-2)
	for index := 1; index < len(vertices)-1; index++ {
		triList = append(triList, geometry.NewTriangle(vertices[0], vertices[index], vertices[index+1]))
	}
	return triList, nil
}

// Given a face vertex index calculate the proper offset into the vertex list.
// Wavefront format can also use negative indices to reference elements from
// the end of the list.
func selectFaceCoordIndex(indexToken string, coordListLen int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = int(index - 1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for "%s"; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
