// Command demo is a minimal host loop exercising every core subsystem in
// one pass: it owns the window, advances input once per frame, runs a toy
// system, propagates transforms, swaps event buffers, and draws a single
// triangle. The frame sequence below follows spec.md §2's control flow
// exactly (input.advance_frame / receive raw events / run_systems /
// events.update_all / render_backend begin-draw-end / host.swap_buffers).
// Grounded on the teacher's engine/engine.go for the overall shape of "one
// place that owns the loop," but deliberately single-threaded: spec.md §5
// requires the core run cooperatively on the host's thread with no
// built-in scheduler, which rules out engine.go's separate tick/render/quit
// goroutines wired together with channels and a WaitGroup.
package main

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/goud-engine/core/ecs"
	"github.com/goud-engine/core/event"
	"github.com/goud-engine/core/hostwindow"
	"github.com/goud-engine/core/input"
	"github.com/goud-engine/core/internal/enginelog"
	"github.com/goud-engine/core/internal/glbackend"
	"github.com/goud-engine/core/render"
	"github.com/goud-engine/core/transform"
)

// spun is sent whenever the demo's root entity completes a full turn,
// exercising the event bus end to end: written from a system, read after
// the frame's double-buffer swap.
type spun struct{ Entity ecs.Entity }

const vertexShaderSource = `#version 330 core
layout (location = 0) in vec2 aPos;
uniform mat4 uModel;
void main() {
	gl_Position = uModel * vec4(aPos, 0.0, 1.0);
}
` + "\x00"

const fragmentShaderSource = `#version 330 core
out vec4 FragColor;
void main() {
	FragColor = vec4(0.9, 0.4, 0.1, 1.0);
}
` + "\x00"

func main() {
	logger := enginelog.New("demo", true)

	manager := input.NewManager(input.WithLogger(logger))
	manager.MapAction("quit", input.KeyBinding(input.KeyCode(256))) // GLFW KeyEscape

	win, err := hostwindow.New(manager,
		hostwindow.WithTitle("goud-engine demo"),
		hostwindow.WithSize(1280, 720),
	)
	if err != nil {
		logger.Fatalf("create window: %v", err)
	}
	defer win.Close()

	backend := glbackend.New(glbackend.WithLogger(logger))
	info := backend.Info()
	logger.Printf("render backend: %s %s (%s)", info.Name, info.Version, info.Renderer)

	world := ecs.NewWorld(ecs.WithLogger(logger))
	hierarchy := transform.NewHierarchy()

	root := world.SpawnEmpty()
	if _, _, err := ecs.Insert(world.Components(), root, transform.FromPosition(mgl32.Vec3{0, 0, 0})); err != nil {
		logger.Fatalf("insert root transform: %v", err)
	}
	if _, _, err := ecs.Insert(world.Components(), root, transform.GlobalIdentity()); err != nil {
		logger.Fatalf("insert root global transform: %v", err)
	}

	child := world.SpawnEmpty()
	if _, _, err := ecs.Insert(world.Components(), child, transform.FromPosition(mgl32.Vec3{1.5, 0, 0})); err != nil {
		logger.Fatalf("insert child transform: %v", err)
	}
	if _, _, err := ecs.Insert(world.Components(), child, transform.GlobalIdentity()); err != nil {
		logger.Fatalf("insert child global transform: %v", err)
	}
	if _, _, err := ecs.Insert(world.Components(), child, transform.Parent{Entity: root}); err != nil {
		logger.Fatalf("insert child parent: %v", err)
	}
	hierarchy.Rebuild(world)

	shader, err := backend.CreateShader(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		logger.Fatalf("create shader: %v", err)
	}
	modelLoc, _ := backend.GetUniformLocation(shader, "uModel")

	triangle := []float32{
		0.0, 0.5,
		-0.5, -0.5,
		0.5, -0.5,
	}
	vbo, err := backend.CreateBuffer(render.BufferVertex, render.UsageStatic, f32bytes(triangle))
	if err != nil {
		logger.Fatalf("create vertex buffer: %v", err)
	}

	backend.SetClearColor(0.05, 0.05, 0.08, 1.0)

	var spin float64
	turns := 0
	last := time.Now()
	for !win.ShouldClose() {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		manager.AdvanceFrame(now)
		win.PollGamepads(manager)
		win.PollEvents()

		if manager.ActionJustPressed("quit") {
			win.RequestClose()
		}

		runSystems(world, dt, &spin, &turns, logger)

		if errs := transform.Propagate3D(world, hierarchy); len(errs) > 0 {
			for _, e := range errs {
				logger.Printf("transform propagation: %v", e)
			}
		}

		world.UpdateEvents()
		drainSpunEvents(world, logger)

		backend.BeginFrame()
		if err := backend.Clear(); err != nil {
			logger.Printf("clear: %v", err)
		}
		width, height := win.Size()
		backend.SetViewport(0, 0, width, height)

		if err := backend.BindShader(shader); err == nil {
			if err := backend.BindBuffer(vbo); err == nil {
				backend.SetVertexAttributes(render.VertexLayout{
					Stride: 2 * 4,
					Attributes: []render.VertexAttribute{
						{Location: 0, Type: render.AttrFloat2, ByteOffset: 0},
					},
				})
				if g, err := ecs.Get[transform.GlobalTransform](world.Components(), root); err == nil && g != nil {
					backend.SetUniformMat4(modelLoc, g.ToColsArray())
				}
				if err := backend.DrawArrays(render.TopologyTriangles, 0, 3); err != nil {
					logger.Printf("draw: %v", err)
				}
			}
		}
		backend.EndFrame()
		win.SwapBuffers()
	}
}

// runSystems is the demo's one piece of game logic: it spins the root
// entity and emits a spun event each time its accumulated rotation crosses
// a full turn.
func runSystems(world *ecs.World, dt float32, spin *float64, turns *int, logger *enginelog.Logger) {
	roots := ecs.EntitiesWith[transform.Transform](world.Components())
	if len(roots) == 0 {
		return
	}
	e := roots[0]
	t, err := ecs.Get[transform.Transform](world.Components(), e)
	if err != nil || t == nil {
		return
	}

	t.RotateZ(dt)
	if _, _, err := ecs.Insert(world.Components(), e, *t); err != nil {
		logger.Printf("update root transform: %v", err)
		return
	}

	*spin += float64(dt)
	if int(*spin/(2*math.Pi)) > *turns {
		*turns++
		event.EventsOf[spun](world.Events()).Send(spun{Entity: e})
	}
}

func drainSpunEvents(world *ecs.World, logger *enginelog.Logger) {
	for _, e := range event.EventsOf[spun](world.Events()).Reader().Read() {
		logger.Printf("entity %v completed a full turn", e.Entity)
	}
}

func f32bytes(values []float32) []byte {
	out := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
