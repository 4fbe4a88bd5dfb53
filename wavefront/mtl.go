package wavefront

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// NewMaterial is a single "newmtl" block: a name and its diffuse map path,
// if any.
type NewMaterial struct {
	Name       string
	DiffuseMap string
}

// MaterialLib is the parsed contents of a single MTL file.
type MaterialLib struct {
	Name      string
	Materials []NewMaterial
}

// ParseMTL reads an MTL file from path and names the resulting MaterialLib
// libName (typically the "mtllib" value referencing it from an OBJ file).
func ParseMTL(path string, libName string) (MaterialLib, error) {
	f, err := os.Open(path)
	if err != nil {
		return MaterialLib{}, parseErr(BadFile, 0)
	}
	defer f.Close()
	return ParseMTLReader(f, libName)
}

// ParseMTLReader parses an MTL document from r: "newmtl" starts a new
// NewMaterial, and "map_Kd" sets the current material's diffuse map.
func ParseMTLReader(r io.Reader, libName string) (MaterialLib, error) {
	lib := MaterialLib{Name: libName}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		trimmed := strings.TrimLeft(scanner.Text(), " \t")
		if trimmed == "" {
			continue
		}

		switch {
		case strings.HasPrefix(trimmed, "newmtl "):
			name := strings.TrimSpace(trimmed[7:])
			if name == "" {
				return MaterialLib{}, parseErr(BadNewMaterial, line)
			}
			lib.Materials = append(lib.Materials, NewMaterial{Name: name})

		case strings.HasPrefix(trimmed, "map_Kd "):
			if len(lib.Materials) == 0 {
				return MaterialLib{}, parseErr(BadNewMaterial, line)
			}
			path := strings.TrimSpace(trimmed[7:])
			if path == "" {
				return MaterialLib{}, parseErr(BadDiffuseMap, line)
			}
			lib.Materials[len(lib.Materials)-1].DiffuseMap = path
		}
	}
	if err := scanner.Err(); err != nil {
		return MaterialLib{}, parseErr(BadFile, line)
	}

	return lib, nil
}
