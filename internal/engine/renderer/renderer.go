// Package renderer draws the orientation cube with OpenGL.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/opennx/nxview/internal/engine/shader"
	"github.com/opennx/nxview/internal/logger"
	"github.com/opennx/nxview/pkg/math"
)

// CubeEdge is the edge length of the rendered cube in viewport units.
const CubeEdge = 200

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer owns the GL resources for the cube scene: one shader
// program, one cube mesh, a fixed light and a fixed projection.
type Renderer struct {
	config Config

	program uint32

	locMVP      int32
	locModel    int32
	locLightDir int32
	locAmbient  int32
	locFill     int32

	cubeVAO     uint32
	cubeVBO     uint32
	vertexCount int32

	// Screen-space orthographic projection, top-left origin: the model
	// matrix positions the cube in pixel coordinates.
	projection math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	r.projection = math.Ortho(0, float32(cfg.Width), float32(cfg.Height), 0, -1000, 1000)

	var err error
	r.program, err = shader.CompileProgram(cubeVertexShader, cubeFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("cube shader: %w", err)
	}

	r.locMVP = shader.GetUniform(r.program, "uMVP")
	r.locModel = shader.GetUniform(r.program, "uModel")
	r.locLightDir = shader.GetUniform(r.program, "uLightDir")
	r.locAmbient = shader.GetUniform(r.program, "uAmbient")
	r.locFill = shader.GetUniform(r.program, "uFill")

	r.createCube()

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.cubeVAO != 0 {
		gl.DeleteVertexArrays(1, &r.cubeVAO)
	}
	if r.cubeVBO != 0 {
		gl.DeleteBuffers(1, &r.cubeVBO)
	}
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the current frame.
func (r *Renderer) End() {
	// Single draw call per frame; nothing to flush
}

// DrawCube draws the cube with the given model matrix. Lighting is a
// single directional light into the screen plus an ambient term, with
// a constant fill color and no outline.
func (r *Renderer) DrawCube(model math.Mat4) {
	mvp := r.projection.Mul(model)

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.locMVP, 1, false, mvp.Ptr())
	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.Uniform3f(r.locLightDir, 0, 0, -1)
	gl.Uniform3f(r.locAmbient, 0.35, 0.35, 0.35)
	gl.Uniform3f(r.locFill, 0.78, 0.78, 0.78)

	gl.BindVertexArray(r.cubeVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)
}

// createCube uploads the cube mesh: positions and normals, interleaved.
func (r *Renderer) createCube() {
	vertices := cubeVertices(CubeEdge)
	r.vertexCount = int32(len(vertices) / 6)

	gl.GenVertexArrays(1, &r.cubeVAO)
	gl.GenBuffers(1, &r.cubeVBO)

	gl.BindVertexArray(r.cubeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cubeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(6 * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, uintptr(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// cubeVertices builds the 36-vertex cube mesh centered on the origin.
// Each vertex is 6 floats: position then face normal.
func cubeVertices(edge float32) []float32 {
	h := edge / 2

	// Each face: normal and four corners in fan order
	faces := [6]struct {
		n [3]float32
		c [4][3]float32
	}{
		{n: [3]float32{0, 0, 1}, c: [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{n: [3]float32{0, 0, -1}, c: [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{n: [3]float32{1, 0, 0}, c: [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{n: [3]float32{-1, 0, 0}, c: [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{n: [3]float32{0, 1, 0}, c: [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{n: [3]float32{0, -1, 0}, c: [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	verts := make([]float32, 0, 36*6)
	push := func(p, n [3]float32) {
		verts = append(verts, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		// two triangles per face
		push(f.c[0], f.n)
		push(f.c[1], f.n)
		push(f.c[2], f.n)
		push(f.c[0], f.n)
		push(f.c[2], f.n)
		push(f.c[3], f.n)
	}
	return verts
}

const cubeVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
	gl_Position = uMVP * vec4(aPos, 1.0);
	vNormal = mat3(uModel) * aNormal;
}
`

const cubeFragmentShader = `
#version 410 core

in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uFill;

out vec4 FragColor;

void main() {
	vec3 n = normalize(vNormal);
	float diff = max(dot(n, normalize(-uLightDir)), 0.0);
	vec3 color = uFill * clamp(uAmbient + vec3(diff), 0.0, 1.0);
	FragColor = vec4(color, 1.0);
}
`
