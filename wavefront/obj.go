package wavefront

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/softraster/raster"
)

// ParseOBJ reads an OBJ file from path and returns its parsed Mesh.
func ParseOBJ(path string) (Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Mesh{}, parseErr(BadFile, 0)
	}
	defer f.Close()
	return ParseOBJReader(f)
}

// ParseOBJReader parses an OBJ document from r, following the reference
// grammar: "v"/"vt"/"vn" accumulate position/texture/normal pools, "g"
// starts a new Part (inheriting the previous part's material name, per the
// reference), "usemtl" sets the current part's material, "f" appends a
// triangle to the current part, and "mtllib" records the material library
// name.
func ParseOBJReader(r io.Reader) (Mesh, error) {
	var mesh Mesh

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		trimmed := strings.TrimLeft(scanner.Text(), " \t")
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "v "):
			v, err := parseVec3(trimmed[2:], BadVertex, line)
			if err != nil {
				return Mesh{}, err
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case strings.HasPrefix(trimmed, "vt "):
			uv, err := parseVec2(trimmed[3:], line)
			if err != nil {
				return Mesh{}, err
			}
			mesh.Textures = append(mesh.Textures, uv)

		case strings.HasPrefix(trimmed, "vn "):
			n, err := parseVec3(trimmed[3:], BadNormal, line)
			if err != nil {
				return Mesh{}, err
			}
			mesh.Normals = append(mesh.Normals, n)

		case strings.HasPrefix(trimmed, "f "):
			if len(mesh.Parts) == 0 {
				return Mesh{}, parseErr(BadGroup, line)
			}
			surf, err := parseSurface(trimmed[2:], line)
			if err != nil {
				return Mesh{}, err
			}
			last := &mesh.Parts[len(mesh.Parts)-1]
			last.Surfaces = append(last.Surfaces, surf)

		case strings.HasPrefix(trimmed, "g "):
			name := strings.TrimSpace(trimmed[2:])
			if name == "" {
				return Mesh{}, parseErr(BadGroup, line)
			}
			part := Part{Name: name}
			if len(mesh.Parts) > 0 {
				part.MaterialName = mesh.Parts[len(mesh.Parts)-1].MaterialName
			}
			mesh.Parts = append(mesh.Parts, part)

		case strings.HasPrefix(trimmed, "usemtl "):
			name := strings.TrimSpace(trimmed[7:])
			if name == "" {
				return Mesh{}, parseErr(BadMaterial, line)
			}
			if len(mesh.Parts) == 0 {
				return Mesh{}, parseErr(BadGroup, line)
			}
			mesh.Parts[len(mesh.Parts)-1].MaterialName = name

		case strings.HasPrefix(trimmed, "mtllib "):
			name := strings.TrimSpace(trimmed[7:])
			if name == "" {
				return Mesh{}, parseErr(BadMaterialLib, line)
			}
			mesh.MaterialLib = name
		}
	}
	if err := scanner.Err(); err != nil {
		return Mesh{}, parseErr(BadFile, line)
	}

	return mesh, nil
}

func parseVec3(s string, badResult ParseResult, line int) (raster.Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return raster.Vec3{}, parseErr(badResult, line)
	}
	var v raster.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return raster.Vec3{}, parseErr(badResult, line)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// parseVec2 matches the reference's lenient texture-coordinate parser: a
// missing V component defaults to 0 instead of erroring.
func parseVec2(s string, line int) (raster.Vec2, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 {
		return raster.Vec2{}, parseErr(BadTexture, line)
	}
	var v raster.Vec2
	u, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return raster.Vec2{}, parseErr(BadTexture, line)
	}
	v[0] = float32(u)
	if len(fields) >= 2 {
		val, err := strconv.ParseFloat(fields[1], 32)
		if err != nil {
			return raster.Vec2{}, parseErr(BadTexture, line)
		}
		v[1] = float32(val)
	}
	return v, nil
}

func parseSurface(s string, line int) ([3]FaceVertex, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return [3]FaceVertex{}, parseErr(BadSurface, line)
	}
	var out [3]FaceVertex
	for i, field := range fields {
		parts := strings.Split(field, "/")
		fv := FaceVertex{}
		for j, p := range parts {
			if j > 2 {
				break
			}
			if p == "" {
				continue
			}
			val, err := strconv.Atoi(p)
			if err != nil {
				return [3]FaceVertex{}, parseErr(BadSurface, line)
			}
			switch j {
			case 0:
				fv.Position = val
			case 1:
				fv.Texture = val
			case 2:
				fv.Normal = val
			}
		}
		if fv.Position == 0 {
			return [3]FaceVertex{}, parseErr(BadSurface, line)
		}
		out[i] = fv
	}
	return out, nil
}
