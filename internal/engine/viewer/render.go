package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/go-assimp/internal/config"
	"github.com/Faultbox/go-assimp/internal/engine/shader"
	"github.com/Faultbox/go-assimp/internal/logger"
	"github.com/Faultbox/go-assimp/pkg/math"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vNormal;

void main() {
    vNormal = aNormal;
    gl_Position = uProj * uView * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;

uniform vec4 uColor;

out vec4 fragColor;

void main() {
    vec3 lightDir = normalize(vec3(0.4, 0.8, 0.6));
    float diff = max(dot(normalize(vNormal), lightDir), 0.0);
    vec3 lit = uColor.rgb * (0.35 + 0.65 * diff);
    fragColor = vec4(lit, uColor.a);
}
`

// Renderer draws flattened models with a single forward pass.
type Renderer struct {
	cfg config.ViewerConfig

	program uint32
	uView   int32
	uProj   int32
	uColor  int32

	vao uint32
	vbo uint32
	ebo uint32

	batches []Batch
}

// NewRenderer initializes OpenGL state and compiles the viewer shaders.
// Must be called after the GL context is created.
func NewRenderer(cfg config.ViewerConfig) (*Renderer, error) {
	r := &Renderer{cfg: cfg}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 1.0)

	program, err := shader.CompileProgram(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.uView = shader.MustGetUniform(program, "uView")
	r.uProj = shader.MustGetUniform(program, "uProj")
	r.uColor = shader.MustGetUniform(program, "uColor")

	if cfg.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	return r, nil
}

// UploadModel moves a flattened model into GPU buffers, replacing any
// previously uploaded model.
func (r *Renderer) UploadModel(m *Model) {
	r.deleteBuffers()

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*6*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	// Position at location 0, normal at location 1, interleaved.
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	gl.BindVertexArray(0)

	r.batches = m.Batches

	logger.Info("model uploaded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", m.TriangleCount()),
		zap.Int("batches", len(m.Batches)),
	)
}

// Resize updates the GL viewport.
func (r *Renderer) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Draw renders the uploaded model with the given view and projection.
func (r *Renderer) Draw(view, proj math.Mat4) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if r.vao == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uView, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.uProj, 1, false, proj.Ptr())

	gl.BindVertexArray(r.vao)
	for _, b := range r.batches {
		gl.Uniform4f(r.uColor, b.Diffuse[0], b.Diffuse[1], b.Diffuse[2], b.Diffuse[3])
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(b.IndexCount), gl.UNSIGNED_INT, uintptr(b.FirstIndex*4))
	}
	gl.BindVertexArray(0)
}

// Close releases all GL resources held by the renderer.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.deleteBuffers()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *Renderer) deleteBuffers() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
		r.vao = 0
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
		r.vbo = 0
	}
	if r.ebo != 0 {
		gl.DeleteBuffers(1, &r.ebo)
		r.ebo = 0
	}
}
