// armpose - Robot Arm Poser
// Springs a three-joint arm toward target angles, prints the segment
// pivots and end effector, and optionally exports the final pose as glTF
// and a wireframe PNG or terminal preview.
//
// Example:
//
//	armpose -targets 30,-60,90 -object 0,1.85,-1.26 -gltf arm.glb -png arm.png
//	armpose -targets 45 -ansi -size 80x48
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/taigrr/neon/pkg/math3d"
	"github.com/taigrr/neon/pkg/render"
	"github.com/taigrr/neon/pkg/rig"
	"github.com/taigrr/neon/pkg/transform"
)

var (
	targetFPS = flag.Int("fps", 60, "Spring update rate (frames per second)")
	maxFrames = flag.Int("frames", 0, "Frames to simulate (0 = until settled)")
	targets   = flag.String("targets", "", "Joint target angles in degrees (comma list, shoulder first)")
	objectPos = flag.String("object", "", "Grabbable object position (x,y,z)")
	baseOps   = flag.String("base", "", "Op-list placing the rig, e.g. \"translate:0,0,-1;rotateY:0.5\"")
	gltfPath  = flag.String("gltf", "", "Write the final pose as glTF (.gltf or .glb)")
	pngPath   = flag.String("png", "", "Write a wireframe render of the final pose as PNG")
	ansiOut   = flag.Bool("ansi", false, "Print a half-block color preview of the final pose")
	imageSize = flag.String("size", "320x240", "Render size in pixels (WxH), two pixel rows per -ansi line")
	every     = flag.Int("every", 0, "Print the effector every N frames (0 = final pose only)")
)

// settleLimit bounds a run without -frames, in seconds of simulated time.
const settleLimit = 30

type options struct {
	fps, frames, every int
	targets            []float32
	object             *math3d.Vec3
	mount              []transform.Op
	gltf, png          string
	ansi               bool
	width, height      int
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "armpose - Robot Arm Poser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: armpose [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	opts, err := parseOptions()
	if err == nil {
		err = run(opts, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions() (options, error) {
	opts := options{
		fps:    *targetFPS,
		frames: *maxFrames,
		every:  *every,
		gltf:   *gltfPath,
		png:    *pngPath,
		ansi:   *ansiOut,
	}
	if opts.fps <= 0 {
		return opts, fmt.Errorf("fps must be positive, got %d", opts.fps)
	}

	var err error
	if opts.targets, err = parseFloats(*targets); err != nil {
		return opts, fmt.Errorf("parse targets: %w", err)
	}
	if *objectPos != "" {
		v, err := parseVec3(*objectPos)
		if err != nil {
			return opts, fmt.Errorf("parse object: %w", err)
		}
		opts.object = &v
	}
	if opts.mount, err = transform.ParseOps(*baseOps); err != nil {
		return opts, fmt.Errorf("parse base: %w", err)
	}
	if opts.width, opts.height, err = parseSize(*imageSize); err != nil {
		return opts, fmt.Errorf("parse size: %w", err)
	}
	return opts, nil
}

func parseFloats(s string) ([]float32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var out []float32
	for _, f := range strings.Split(s, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return nil, err
		}
		out = append(out, float32(v))
	}
	return out, nil
}

func parseVec3(s string) (math3d.Vec3, error) {
	f, err := parseFloats(s)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.Vec3FromSlice(f)
}

func parseSize(s string) (w, h int, err error) {
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%q: dimensions must be positive", s)
	}
	return w, h, nil
}

func run(opts options, out io.Writer) error {
	arm := rig.DefaultArm(opts.fps)
	arm.Mount = opts.mount

	cache, err := transform.NewCache(8 * (arm.Chain().Len() + 1))
	if err != nil {
		return err
	}
	arm.UseCache(cache)

	if len(opts.targets) > len(arm.Joints) {
		return fmt.Errorf("%d targets for %d joints", len(opts.targets), len(arm.Joints))
	}
	for i, deg := range opts.targets {
		if err := arm.SetTarget(i, math3d.ToRadians(deg)); err != nil {
			return err
		}
	}

	var obj *rig.Object
	if opts.object != nil {
		obj = rig.NewObject(*opts.object)
	}

	limit := opts.frames
	if limit <= 0 {
		limit = settleLimit * opts.fps
	}

	pose := arm.Pose()
	grab := func(frame int) {
		if obj == nil {
			return
		}
		held := obj.Held
		if obj.Grab(pose.Effector, rig.GrabRadius) && !held {
			fmt.Fprintf(out, "frame %d: grabbed object\n", frame)
		}
	}

	grab(0)
	frame := 0
	for ; frame < limit; frame++ {
		if opts.frames <= 0 && arm.Settled() {
			break
		}
		arm.Step()
		pose = arm.Pose()
		grab(frame + 1)
		if opts.every > 0 && (frame+1)%opts.every == 0 {
			fmt.Fprintf(out, "frame %d: effector %v\n", frame+1, pose.Effector)
		}
	}

	state := "settled"
	if !arm.Settled() {
		state = "moving"
	}
	fmt.Fprintf(out, "after %d frames (%s):\n", frame, state)
	for i, s := range pose.Segments {
		fmt.Fprintf(out, "  %-8s pivot %v angle %.1f°\n", s.Name, s.Origin, math3d.ToDegrees(float32(arm.Joints[i].Angle)))
	}
	fmt.Fprintf(out, "  effector %v\n", pose.Effector)
	if obj != nil {
		fmt.Fprintf(out, "  object   %v held=%v\n", obj.Position, obj.Held)
	}

	var objects []*rig.Object
	if obj != nil {
		objects = append(objects, obj)
	}
	if opts.gltf != "" {
		if err := rig.WriteGLTF(opts.gltf, arm.Document(objects...)); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", opts.gltf)
	}
	if opts.png == "" && !opts.ansi {
		return nil
	}
	phase := float32(frame) / float32(opts.fps)
	fb := drawPose(pose, obj, phase, opts.width, opts.height)
	if opts.png != "" {
		if err := fb.SavePNG(opts.png); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", opts.png)
	}
	if opts.ansi {
		fmt.Fprintln(out, fb.ANSI())
	}
	return nil
}

// drawPose renders the arm from a three-quarter view around the default
// base.
func drawPose(pose rig.Pose, obj *rig.Object, phase float32, width, height int) *render.Framebuffer {
	fb := render.NewFramebuffer(width, height)
	fb.Clear(render.Color{R: 30, G: 30, B: 40, A: 255})

	target := math3d.AddVec3(pose.Base, math3d.V3(0, 0.5, 0))
	camera := render.NewCamera(math3d.AddVec3(target, math3d.V3(0, 0.6, 3)), target)
	camera.SetAspect(float32(width) / float32(height))
	camera.Orbit(math.Pi / 5)

	wire := render.NewWireframe(camera, fb)
	wire.DrawGrid(pose.Base[1], 4, 0.5, render.ColorGray)
	wire.DrawAxes(0.5)
	for _, s := range pose.Segments {
		wire.DrawBox(s.Model, render.ColorWhite)
		wire.DrawPoint(s.Origin, 0.1, render.ColorBlue)
	}
	wire.DrawPoint(pose.Effector, 0.15, render.ColorRed)

	if obj != nil {
		c := render.ColorGreen
		if obj.Held {
			c = render.ColorRed
		}
		wire.DrawBox(obj.Segment().Model, c)
		for _, s := range obj.Satellites(phase * 2 * math.Pi) {
			wire.DrawBox(s.Model, render.ColorGray)
		}
	}
	return fb
}
