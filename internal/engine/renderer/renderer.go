// Package renderer draws the scene graph with OpenGL.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/lionfan/internal/engine/camera"
	"github.com/Faultbox/lionfan/internal/engine/geometry"
	"github.com/Faultbox/lionfan/internal/engine/lighting"
	"github.com/Faultbox/lionfan/internal/engine/scene"
	"github.com/Faultbox/lionfan/internal/engine/shader"
	"github.com/Faultbox/lionfan/internal/logger"
	"github.com/Faultbox/lionfan/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	Background uint32 // 0xRRGGBB
}

// gpuMesh is the uploaded copy of a geometry.Mesh.
type gpuMesh struct {
	vao, vbo, ebo uint32
	indices       int32
	vertices      int
}

// Renderer draws scene nodes flat shaded under a fixed light rig.
type Renderer struct {
	config  Config
	program *shader.Program
	rig     lighting.Rig
	meshes  map[*geometry.Mesh]*gpuMesh
	log     *zap.Logger
}

// New creates a renderer. It must be called after the OpenGL context exists,
// on the thread that owns it.
func New(cfg Config, rig lighting.Rig) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		rig:    rig,
		meshes: make(map[*geometry.Mesh]*gpuMesh),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	r.SetBackground(cfg.Background)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))
	return r, nil
}

// SetBackground changes the clear colour.
func (r *Renderer) SetBackground(hex uint32) {
	r.config.Background = hex
	c := geometry.HexColor(hex)
	gl.ClearColor(c[0], c[1], c[2], 1)
}

// Resize handles window resize. width and height are in drawable pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Render clears the frame and draws every mesh node under root. It returns
// the number of draw calls issued.
func (r *Renderer) Render(root *scene.Node, cam *camera.Camera) int {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	p := r.program
	p.Use()
	p.SetMat4("uViewProj", cam.ViewProjection())
	r.uploadRig()

	draws := 0
	root.Walk(func(n *scene.Node, world math.Mat4) {
		if n.Mesh == nil {
			return
		}
		m := r.sync(n.Mesh)
		p.SetMat4("uModel", world)
		p.SetVec3("uColor", n.Material.Color())
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indices, gl.UNSIGNED_INT, nil)
		draws++
	})
	gl.BindVertexArray(0)
	return draws
}

func (r *Renderer) uploadRig() {
	p, rig := r.program, r.rig
	p.SetVec3("uSky", rig.Ambient.Sky)
	p.SetVec3("uGround", rig.Ambient.Ground)
	p.SetFloat("uAmbient", rig.Ambient.Intensity)

	k := rig.Key.Direction()
	p.SetVec3("uKeyDir", [3]float32{k.X, k.Y, k.Z})
	p.SetVec3("uKeyColor", rig.Key.Color)
	p.SetFloat("uKeyIntensity", rig.Key.Intensity)

	b := rig.Back.Direction()
	p.SetVec3("uBackDir", [3]float32{b.X, b.Y, b.Z})
	p.SetVec3("uBackColor", rig.Back.Color)
	p.SetFloat("uBackIntensity", rig.Back.Intensity)
}

// sync uploads mesh on first use and re-uploads its vertices when dirty.
func (r *Renderer) sync(mesh *geometry.Mesh) *gpuMesh {
	m, ok := r.meshes[mesh]
	if !ok {
		m = r.upload(mesh)
		r.meshes[mesh] = m
		mesh.ClearDirty()
		return m
	}
	if mesh.Dirty() {
		verts := mesh.Flatten()
		gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		mesh.ClearDirty()
	}
	return m
}

func (r *Renderer) upload(mesh *geometry.Mesh) *gpuMesh {
	m := &gpuMesh{indices: int32(len(mesh.Indices)), vertices: mesh.VertexCount()}
	verts := mesh.Flatten()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh uploaded",
		zap.String("mesh", mesh.Name),
		zap.Int("vertices", m.vertices),
		zap.Int32("indices", m.indices),
	)
	return m
}

// ReadPixels returns the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

// Close releases every GPU resource.
func (r *Renderer) Close() {
	r.log.Info("closing renderer", zap.Int("meshes", len(r.meshes)))
	for mesh, m := range r.meshes {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		delete(r.meshes, mesh)
	}
	if r.program != nil {
		r.program.Delete()
	}
}
