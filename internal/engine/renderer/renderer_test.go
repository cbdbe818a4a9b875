package renderer

import "testing"

func TestCubeVertices(t *testing.T) {
	verts := cubeVertices(CubeEdge)

	// 6 faces * 2 triangles * 3 vertices, 6 floats each
	if len(verts) != 36*6 {
		t.Fatalf("vertex buffer length: got %d, want %d", len(verts), 36*6)
	}

	h := float32(CubeEdge) / 2
	for i := 0; i < len(verts); i += 6 {
		for j := 0; j < 3; j++ {
			p := verts[i+j]
			if p != h && p != -h {
				t.Fatalf("vertex %d position component %d: got %v, want ±%v", i/6, j, p, h)
			}
		}

		// Face normals are axis-aligned units
		nx, ny, nz := verts[i+3], verts[i+4], verts[i+5]
		if nx*nx+ny*ny+nz*nz != 1 {
			t.Fatalf("vertex %d normal not unit: (%v, %v, %v)", i/6, nx, ny, nz)
		}
	}
}

func TestCubeVerticesNormalsMatchFaces(t *testing.T) {
	verts := cubeVertices(2) // h = 1, so positions are ±1

	// Every vertex must lie on the face its normal names.
	for i := 0; i < len(verts); i += 6 {
		pos := [3]float32{verts[i], verts[i+1], verts[i+2]}
		n := [3]float32{verts[i+3], verts[i+4], verts[i+5]}

		dot := pos[0]*n[0] + pos[1]*n[1] + pos[2]*n[2]
		if dot != 1 {
			t.Fatalf("vertex %d not on its face plane: pos=%v normal=%v", i/6, pos, n)
		}
	}
}
