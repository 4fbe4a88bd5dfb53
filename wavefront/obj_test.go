package wavefront

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cubeOBJ = `
mtllib cube.mtl
v -1 -1 -1
v -1 -1 1
v -1 1 -1
v -1 1 1
v 1 -1 -1
v 1 -1 1
v 1 1 -1
v 1 1 1
vt 0 0
vt 1 0
vt 1 1
vn 0 0 -1
vn 0 0 1
g front
usemtl red
f 1/1/1 3/2/1 2/3/1
f 3/1/1 4/2/1 2/3/1
g back
usemtl blue
f 5/1/2 6/2/2 7/3/2
f 7/1/2 6/2/2 8/3/2
`

func TestParseOBJCube(t *testing.T) {
	mesh, err := ParseOBJReader(strings.NewReader(cubeOBJ))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 8)
	require.Len(t, mesh.Parts, 2)
	require.Equal(t, "cube.mtl", mesh.MaterialLib)
	require.Equal(t, "red", mesh.Parts[0].MaterialName)
	require.Equal(t, "blue", mesh.Parts[1].MaterialName)
	require.Len(t, mesh.Parts[0].Surfaces, 2)
	require.Len(t, mesh.Parts[1].Surfaces, 2)
}

func TestCreateDataProducesFlattenedBuffers(t *testing.T) {
	mesh, err := ParseOBJReader(strings.NewReader(cubeOBJ))
	require.NoError(t, err)

	data := mesh.CreateData()

	require.Len(t, data.Indices, 4*3)
	require.Len(t, data.Parts, 2)
	require.Equal(t, 0, data.Parts[0].IndexOffset)
	require.Equal(t, 6, data.Parts[0].IndexCount)
	require.Equal(t, 6, data.Parts[1].IndexOffset)
	require.Equal(t, 6, data.Parts[1].IndexCount)

	require.Equal(t, 0, len(data.Vertices)%VertexLayout)
	vertexCount := len(data.Vertices) / VertexLayout
	require.LessOrEqual(t, vertexCount, len(data.Indices))
	require.Greater(t, vertexCount, 0)
}

func TestFaceWithoutGroupIsRejected(t *testing.T) {
	const src = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	_, err := ParseOBJReader(strings.NewReader(src))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, BadGroup, perr.Result)
}

func TestMalformedVertexLine(t *testing.T) {
	const src = "v 0 0\ng g1\nf 1 1 1\n"
	_, err := ParseOBJReader(strings.NewReader(src))
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, BadVertex, perr.Result)
}
