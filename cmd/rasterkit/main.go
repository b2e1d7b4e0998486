// rasterkit - Terminal 3D Model Viewer
// View GLB files in your terminal with a CPU-only software rasterizer.
//
// Controls:
//
//	Mouse move  - Rotate model (yaw/pitch); no button needs to be held
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right
//	Space       - Apply random impulse
//	R           - Reset rotation
//	X           - Toggle wireframe mode
//	Ctrl+C      - Quit
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/charmbracelet/harmonica"

	"github.com/taigrr/rasterkit/pkg/math3d"
	"github.com/taigrr/rasterkit/pkg/models"
	"github.com/taigrr/rasterkit/pkg/pipeline"
	"github.com/taigrr/rasterkit/pkg/render"
)

var (
	targetFPS = flag.Int("fps", 60, "Target FPS")
	cull      = flag.Bool("cull", false, "Enable frustum AABB culling")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rasterkit - Terminal 3D Model Viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: rasterkit [options] <model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// rotationAxis tracks a spring-decayed angular velocity for one Euler
// axis, so a mouse drag or key tap leaves the model spinning and
// settling rather than snapping to a stop.
type rotationAxis struct {
	position float32
	velocity float32
	spring   harmonica.Spring
	accel    float32
}

func newRotationAxis(fps int) rotationAxis {
	return rotationAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *rotationAxis) update() {
	a.position += a.velocity
	vel64, accel64 := a.spring.Update(float64(a.velocity), float64(a.accel), 0)
	a.velocity, a.accel = float32(vel64), float32(accel64)
}

type rotationState struct {
	pitch, yaw, roll rotationAxis
	fps              int
}

func newRotationState(fps int) *rotationState {
	return &rotationState{
		pitch: newRotationAxis(fps),
		yaw:   newRotationAxis(fps),
		roll:  newRotationAxis(fps),
		fps:   fps,
	}
}

func (r *rotationState) update() {
	r.pitch.update()
	r.yaw.update()
	r.roll.update()
}

func (r *rotationState) applyImpulse(pitch, yaw, roll float32) {
	r.pitch.velocity += pitch
	r.yaw.velocity += yaw
	r.roll.velocity += roll
}

func (r *rotationState) reset() {
	*r = *newRotationState(r.fps)
}

// sceneState holds everything the on_init/on_update callbacks need,
// threaded through render.Start's closures rather than globals.
type sceneState struct {
	pipe      *pipeline.Pipeline
	camera    *render.Camera
	object    *models.Object3D
	rotation  *rotationState
	wireframe bool
	xWasDown  bool
	cameraZ   float32
	mouseDown bool
	lastMouseX, lastMouseY int
	inputTorque struct{ pitch, yaw, roll float32 }
}

func run(modelPath string) error {
	mesh, texture, err := models.LoadGLBWithTexture(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if texture == nil {
		texture = checkerTexture(64, 64, 8, render.RGB(200, 200, 200), render.RGB(100, 100, 100))
	}

	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n",
		filepath.Base(modelPath), mesh.VertexCount(), mesh.TriangleCount())

	mesh.CalculateBounds()
	center := mesh.Center()
	size := mesh.BoundsMax.Sub(mesh.BoundsMin)
	maxDim := size.X
	if size.Y > maxDim {
		maxDim = size.Y
	}
	if size.Z > maxDim {
		maxDim = size.Z
	}
	scale := float32(1)
	if maxDim > 0 {
		scale = 2.0 / maxDim
	}
	for i := range mesh.Vertices {
		mesh.Vertices[i].Position = mesh.Vertices[i].Position.Sub(center).Scale(scale)
	}

	object := models.NewObject3D()
	object.AddMesh(mesh, texture)

	state := &sceneState{
		camera:   render.NewCamera(),
		object:   object,
		rotation: newRotationState(*targetFPS),
		cameraZ:  5,
	}
	state.camera.Projection = render.Projection{FovDeg: 60, Near: 0.1, Far: 100}

	cfg := render.Config{
		WindowWidth:  160,
		WindowHeight: 96 * 2,
		WindowTitle:  "rasterkit",
		ClearScreen:  true,
	}

	newSurface := func(w, h int, title string) (render.Surface, error) {
		return render.NewTerminalSurface(w, h/2, title)
	}

	onInit := func(f *render.Frame) error {
		state.pipe = pipeline.New(f.FB)
		state.pipe.Cull = *cull
		state.camera.Position = math3d.V3(0, 0, state.cameraZ)
		state.camera.UpdateViewMatrix()
		return nil
	}

	onUpdate := func(f *render.Frame, dt float64) error {
		state.step(f.Surface, float32(dt))
		return state.pipe.Draw(state.camera, []*models.Object3D{state.object})
	}

	return render.Start(cfg, newSurface, onInit, onUpdate)
}

// step reads input from the surface, advances spring-decayed rotation,
// applies wheel zoom directly to the camera distance, and applies the
// result to the object and camera for this frame.
func (s *sceneState) step(surface render.Surface, dt float32) {
	const torqueStrength = 3.0

	if dt > 0.1 {
		dt = 0.1
	}

	switch {
	case surface.KeyDown("w") || surface.KeyDown("up"):
		s.inputTorque.pitch = -torqueStrength
	case surface.KeyDown("s") || surface.KeyDown("down"):
		s.inputTorque.pitch = torqueStrength
	default:
		s.inputTorque.pitch = 0
	}
	switch {
	case surface.KeyDown("a") || surface.KeyDown("left"):
		s.inputTorque.yaw = -torqueStrength
	case surface.KeyDown("d") || surface.KeyDown("right"):
		s.inputTorque.yaw = torqueStrength
	default:
		s.inputTorque.yaw = 0
	}
	switch {
	case surface.KeyDown("q"):
		s.inputTorque.roll = -torqueStrength
	case surface.KeyDown("e"):
		s.inputTorque.roll = torqueStrength
	default:
		s.inputTorque.roll = 0
	}
	if surface.KeyDown("r") {
		s.rotation.reset()
		s.cameraZ = 5
	}
	xDown := surface.KeyDown("x")
	if xDown && !s.xWasDown {
		s.wireframe = !s.wireframe
	}
	s.xWasDown = xDown
	if surface.KeyDown(" ") {
		s.rotation.applyImpulse(
			(rand.Float32()-0.5)*1.5,
			(rand.Float32()-0.5)*1.5,
			(rand.Float32()-0.5)*1.5,
		)
	}

	if wheel := surface.WheelDelta(); wheel != 0 {
		s.cameraZ -= float32(wheel) * 0.5
		if s.cameraZ < 1 {
			s.cameraZ = 1
		}
		if s.cameraZ > 20 {
			s.cameraZ = 20
		}
	}

	mouseX, mouseY := surface.MouseX(), surface.MouseY()
	if mouseX != s.lastMouseX || mouseY != s.lastMouseY {
		if s.mouseDown {
			dx := mouseX - s.lastMouseX
			dy := mouseY - s.lastMouseY
			s.rotation.applyImpulse(float32(dy)*0.03, float32(dx)*0.03, 0)
		}
		s.lastMouseX, s.lastMouseY = mouseX, mouseY
		s.mouseDown = true
	}

	s.rotation.applyImpulse(s.inputTorque.pitch*dt, s.inputTorque.yaw*dt, s.inputTorque.roll*dt)
	s.rotation.update()

	s.object.Rotation = math3d.V3(s.rotation.pitch.position, s.rotation.yaw.position, s.rotation.roll.position)
	s.camera.Position = math3d.V3(0, 0, s.cameraZ)
	s.camera.UpdateViewMatrix()
	s.pipe.Wireframe = s.wireframe
}

// checkerTexture builds a procedural fallback texture so a model with
// no diffuse texture still shows UV seams clearly.
func checkerTexture(width, height, cell int, a, b render.Color) *render.Image {
	img := render.NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if ((x/cell)+(y/cell))%2 == 1 {
				c = b
			}
			img.SetPixel(x, y, c)
		}
	}
	return img
}
