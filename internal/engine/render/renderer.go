// Package render draws a single mesh set with OpenGL, in solid or
// wireframe fill mode.
package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/mlanner/orbview/internal/asset"
	"github.com/mlanner/orbview/internal/engine/shader"
	"github.com/mlanner/orbview/internal/logger"
	"github.com/mlanner/orbview/pkg/math"
)

const vertexShaderSource = `#version 410 core
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPosition, 1.0);
}
`

const fragmentShaderSource = `#version 410 core
in vec3 vNormal;

uniform vec3 uLightDir;
uniform vec3 uAmbient;
uniform vec3 uDiffuse;
uniform vec3 uBaseColor;

out vec4 FragColor;

void main() {
    vec3 normal = normalize(vNormal);
    vec3 lightDir = normalize(uLightDir);
    float diff = abs(dot(normal, lightDir));
    vec3 result = (uAmbient + diff * uDiffuse) * uBaseColor;
    FragColor = vec4(result, 1.0);
}
`

// meshVertex is the GPU vertex format.
type meshVertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer uploads one mesh set at a time and draws it each frame.
// Must be created and used on the thread owning the OpenGL context.
type Renderer struct {
	config Config

	program       uint32
	locModel      int32
	locView       int32
	locProjection int32
	locLightDir   int32
	locAmbient    int32
	locDiffuse    int32
	locBaseColor  int32

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// New creates a new renderer. Must be called after the OpenGL context
// exists.
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{config: cfg}

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
	gl.ClearColor(0.12, 0.12, 0.16, 1.0)

	var err error
	r.program, err = shader.CompileProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.locModel = shader.GetUniform(r.program, "uModel")
	r.locView = shader.GetUniform(r.program, "uView")
	r.locProjection = shader.GetUniform(r.program, "uProjection")
	r.locLightDir = shader.GetUniform(r.program, "uLightDir")
	r.locAmbient = shader.GetUniform(r.program, "uAmbient")
	r.locDiffuse = shader.GetUniform(r.program, "uDiffuse")
	r.locBaseColor = shader.GetUniform(r.program, "uBaseColor")

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.clearMesh()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Aspect returns the current width/height ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Upload replaces the current mesh with the given set. Triangles are
// expanded with flat per-face normals; indexing is not preserved.
func (r *Renderer) Upload(set asset.MeshSet) {
	r.clearMesh()

	var vertices []meshVertex
	for _, m := range set {
		for i := 0; i+2 < len(m.Indices); i += 3 {
			i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
			if int(i0) >= len(m.Positions) || int(i1) >= len(m.Positions) || int(i2) >= len(m.Positions) {
				continue // skip invalid faces
			}
			v0, v1, v2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]

			normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
			n := [3]float32{normal.X, normal.Y, normal.Z}
			vertices = append(vertices,
				meshVertex{Position: [3]float32{v0.X, v0.Y, v0.Z}, Normal: n},
				meshVertex{Position: [3]float32{v1.X, v1.Y, v1.Z}, Normal: n},
				meshVertex{Position: [3]float32{v2.X, v2.Y, v2.Z}, Normal: n},
			)
		}
	}
	if len(vertices) == 0 {
		return
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(unsafe.Sizeof(meshVertex{})), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(meshVertex{}))
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	r.vertexCount = int32(len(vertices))
	logger.Debug("mesh uploaded", zap.Int32("vertices", r.vertexCount))
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Draw renders the uploaded mesh with the given transforms. The
// wireframe flag selects the polygon fill mode.
func (r *Renderer) Draw(model, view, projection math.Mat4, wireframe bool) {
	if r.vao == 0 || r.vertexCount == 0 {
		return
	}

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.UseProgram(r.program)

	gl.UniformMatrix4fv(r.locModel, 1, false, model.Ptr())
	gl.UniformMatrix4fv(r.locView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.locProjection, 1, false, projection.Ptr())

	gl.Uniform3f(r.locLightDir, 0.5, 1.0, 0.5)
	gl.Uniform3f(r.locAmbient, 0.35, 0.35, 0.35)
	gl.Uniform3f(r.locDiffuse, 0.65, 0.65, 0.65)
	gl.Uniform3f(r.locBaseColor, 0.75, 0.78, 0.82)

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount)
	gl.BindVertexArray(0)

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (r *Renderer) clearMesh() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	r.vertexCount = 0
}
