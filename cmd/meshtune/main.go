// meshtune - mesh inspection and optimization toolkit
//
// Commands:
//
//	stats    Validate a mesh and report geometry statistics
//	widen    Normalize the index buffer to 32-bit form
//	preview  Auto-rotating terminal wireframe view
//
// Simplification, render-order optimization, and meshlet clustering are
// library operations (pkg/optimize) that need a geometry kernel injected by
// the host engine; the CLI covers the kernel-free surface.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/taigrr/meshtune/internal/config"
	"github.com/taigrr/meshtune/internal/logger"
	"github.com/taigrr/meshtune/pkg/mesh"
	"github.com/taigrr/meshtune/pkg/optimize"
	"github.com/taigrr/meshtune/pkg/preview"
)

var (
	configPath  = flag.String("config", "", "Path to meshtune.yaml (default: standard locations)")
	logLevel    = flag.String("log-level", "", "Override configured log level (debug/info/warn/error)")
	targetRatio = flag.Float64("ratio", 0, "Override configured simplification target ratio for stats")
	targetFPS   = flag.Int("fps", 0, "Override configured preview FPS")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "meshtune - mesh inspection and optimization toolkit\n\n")
		fmt.Fprintf(os.Stderr, "Usage: meshtune [options] <stats|widen|preview> <model.glb|model.gltf>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n")
		fmt.Fprintf(os.Stderr, "  stats    Validate the mesh and report geometry statistics\n")
		fmt.Fprintf(os.Stderr, "  widen    Normalize the index buffer to 32-bit form\n")
		fmt.Fprintf(os.Stderr, "  preview  Auto-rotating terminal wireframe (Esc or q to quit)\n")
	}
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *targetRatio > 0 {
		cfg.Optimize.TargetRatio = float32(*targetRatio)
	}
	if *targetFPS > 0 {
		cfg.Preview.FPS = *targetFPS
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command, modelPath := flag.Arg(0), flag.Arg(1)
	switch command {
	case "stats":
		err = runStats(modelPath, cfg)
	case "widen":
		err = runWiden(modelPath)
	case "preview":
		err = runPreview(modelPath, cfg)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		logger.Log.Error("command failed", zap.String("command", command), zap.Error(err))
		os.Exit(1)
	}
}

func loadMesh(path string) (*mesh.Mesh, error) {
	start := time.Now()
	m, err := mesh.LoadGLTF(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logger.Log.Debug("model loaded",
		zap.String("path", path),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
		zap.Duration("elapsed", time.Since(start)))
	return m, nil
}

func indexWidth(indices mesh.Indices) string {
	switch indices.(type) {
	case mesh.IndicesU16:
		return "u16"
	case mesh.IndicesU32:
		return "u32"
	case nil:
		return "none"
	default:
		return "unknown"
	}
}

func runStats(path string, cfg *config.Config) error {
	m, err := loadMesh(path)
	if err != nil {
		return err
	}

	min, max := m.Bounds()
	fmt.Printf("Mesh:      %s\n", m.Name)
	fmt.Printf("Topology:  %s\n", m.Topology())
	fmt.Printf("Vertices:  %d\n", m.VertexCount())
	fmt.Printf("Triangles: %d\n", m.TriangleCount())
	fmt.Printf("Indices:   %s\n", indexWidth(m.Indices()))
	fmt.Printf("Attributes:%v\n", m.AttributeNames())
	fmt.Printf("Bounds:    min=%v max=%v\n", min, max)

	// Validation happens against the canonical form the kernel operations
	// expect, so a u16 mesh is checked as if widened.
	check := m
	if _, ok := m.Indices().(mesh.IndicesU16); ok {
		check = m.Clone()
		optimize.WidenIndices(check)
		fmt.Printf("Note:      16-bit indices, run `meshtune widen` before processing\n")
	}
	if err := optimize.Validate(check); err != nil {
		fmt.Printf("Invalid:   %v\n", err)
		return nil
	}
	fmt.Printf("Valid:     ready for processing\n")

	if m.Indices() != nil {
		current := m.Indices().Len()
		target := optimize.Multiplier(cfg.Optimize.TargetRatio).IndexCount(current)
		fmt.Printf("Simplify:  ratio %.2f -> %d of %d indices (%d triangles)\n",
			cfg.Optimize.TargetRatio, target, current, target/3)

		maxTris := cfg.Optimize.MeshletMaxTriangles
		if maxTris > 0 {
			lower := (m.TriangleCount() + maxTris - 1) / maxTris
			fmt.Printf("Meshlets:  >= %d clusters at %dv/%dt\n",
				lower, cfg.Optimize.MeshletMaxVertices, maxTris)
		}
	}
	return nil
}

func runWiden(path string) error {
	m, err := loadMesh(path)
	if err != nil {
		return err
	}

	before := indexWidth(m.Indices())
	optimize.WidenIndices(m)
	after := indexWidth(m.Indices())

	if before == after {
		fmt.Printf("Indices already %s, nothing to do\n", before)
		return nil
	}
	fmt.Printf("Widened %d indices: %s -> %s\n", m.Indices().Len(), before, after)
	return nil
}

// RotationAxis tracks position and velocity for one rotation axis with
// spring decay, so keyboard impulses ease out instead of stopping dead.
type RotationAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

// NewRotationAxis creates an axis with a critically damped spring.
func NewRotationAxis(fps int) RotationAxis {
	return RotationAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update applies velocity to position and decays velocity toward 0.
func (a *RotationAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

func runPreview(path string, cfg *config.Config) error {
	m, err := loadMesh(path)
	if err != nil {
		return err
	}

	positions, ok := m.Positions()
	if !ok {
		return optimize.ErrMissingPositions
	}

	// The preview draws from a u32 buffer regardless of stored width.
	var indices []uint32
	switch idx := m.Indices().(type) {
	case mesh.IndicesU16:
		indices = idx.Widen()
	case mesh.IndicesU32:
		indices = idx
	default:
		return optimize.ErrMissingIndices
	}

	// Center and scale into a 2-unit box like the camera expects.
	center := m.Center()
	size := m.Size()
	maxDim := size.X()
	if size.Y() > maxDim {
		maxDim = size.Y()
	}
	if size.Z() > maxDim {
		maxDim = size.Z()
	}
	fit := mgl32.Ident4()
	if maxDim > 0 {
		scale := 2.0 / maxDim
		fit = mgl32.Scale3D(scale, scale, scale).Mul4(
			mgl32.Translate3D(-center.X(), -center.Y(), -center.Z()))
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	renderer := preview.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := renderer.FramebufferSize()
	fb := preview.NewFramebuffer(fbWidth, fbHeight)

	camera := preview.NewCamera()
	camera.Aspect = float32(fbWidth) / float32(fbHeight)

	fps := cfg.Preview.FPS
	if fps <= 0 {
		fps = 60
	}
	yaw := NewRotationAxis(fps)
	pitch := NewRotationAxis(fps)
	yaw.Velocity = 0.02 // gentle auto-spin

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				renderer = preview.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = renderer.FramebufferSize()
				fb = preview.NewFramebuffer(fbWidth, fbHeight)
				camera.Aspect = float32(fbWidth) / float32(fbHeight)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("q"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("a", "left"):
					yaw.Velocity -= 0.02
				case ev.MatchString("d", "right"):
					yaw.Velocity += 0.02
				case ev.MatchString("w", "up"):
					pitch.Velocity -= 0.02
				case ev.MatchString("s", "down"):
					pitch.Velocity += 0.02
				case ev.MatchString("r"):
					yaw = NewRotationAxis(fps)
					pitch = NewRotationAxis(fps)
					yaw.Velocity = 0.02
				}
			}
		}
	}()

	bg := preview.RGB(cfg.Preview.Background[0], cfg.Preview.Background[1], cfg.Preview.Background[2])
	wire := preview.RGB(cfg.Preview.Wireframe[0], cfg.Preview.Wireframe[1], cfg.Preview.Wireframe[2])
	frame := time.Second / time.Duration(fps)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		start := time.Now()
		yaw.Update()
		pitch.Update()

		model := mgl32.HomogRotate3DX(float32(pitch.Position)).
			Mul4(mgl32.HomogRotate3DY(float32(yaw.Position))).
			Mul4(fit)

		fb.Clear(bg)
		preview.DrawMesh(fb, camera, positions, indices, model, wire)
		renderer.Render(fb)
		if err := renderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		if elapsed := time.Since(start); elapsed < frame {
			time.Sleep(frame - elapsed)
		}
	}
}
