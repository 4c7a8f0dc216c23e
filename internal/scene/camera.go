package scene

import (
	"math"

	"weird3d/internal/mat4"
	"weird3d/internal/pipeline"
)

// Camera orbits a target point. Yaw turns about the world y axis and Pitch
// tilts toward it; both are in degrees.
type Camera struct {
	Target   Vec
	Distance float64
	Yaw      float64
	Pitch    float64
	FovY     float64 // degrees
	Near     float64
	Far      float64
	Fit      float64 // distance picked by Frame; 0 disables the zoom limits
}

// MaxPitch keeps the view direction off the up vector.
const MaxPitch = 89

// Zoom limits as magnification of the framed view: Distance stays within
// [Fit/MaxZoom, Fit/MinZoom].
const (
	MinZoom = 0.05
	MaxZoom = 64
)

// Frame returns a camera looking at the center of b from far enough away to
// see all of it with the vertical field of view fovY.
func Frame(b Box, fovY float64) Camera {
	r := max(b.Radius(), 1)
	dist := r/math.Sin(mat4.Radians(fovY)/2) + r*0.1
	return Camera{
		Target:   b.Center(),
		Distance: dist,
		Yaw:      30,
		Pitch:    25,
		FovY:     fovY,
		Near:     max(dist-4*r, dist/100),
		Far:      dist + 4*r,
		Fit:      dist,
	}
}

// Eye returns the camera position.
func (cam Camera) Eye() Vec {
	yaw, pitch := mat4.Radians(cam.Yaw), mat4.Radians(cam.Pitch)
	dir := Vec{
		X: math.Cos(pitch) * math.Sin(yaw),
		Y: math.Sin(pitch),
		Z: math.Cos(pitch) * math.Cos(yaw),
	}
	return cam.Target.Add(dir.Mul(cam.Distance))
}

// Orbit turns the camera, clamping the pitch to ±MaxPitch.
func (cam *Camera) Orbit(dYaw, dPitch float64) {
	cam.Yaw = math.Mod(cam.Yaw+dYaw, 360)
	cam.Pitch = min(max(cam.Pitch+dPitch, -MaxPitch), MaxPitch)
}

// Zoom multiplies the distance to the target by f, within the zoom limits.
func (cam *Camera) Zoom(f float64) {
	if !(f > 0) || cam.Distance <= 0 {
		return
	}
	d := cam.Distance * f
	if cam.Fit > 0 {
		d = min(max(d, cam.Fit/MaxZoom), cam.Fit/MinZoom)
	}
	f = d / cam.Distance
	cam.Distance = d
	cam.Near *= f
	cam.Far *= f
}

// Apply resets c and loads the viewport, projection and view for a
// pixW×pixH target whose y axis grows downward.
func (cam Camera) Apply(c *Context, pixW, pixH float64) error {
	c.Reset()
	if pixW <= 0 || pixH <= 0 {
		return pipeline.ErrDegenerateViewport
	}
	if err := c.SetViewport(-1, 1, 1, -1, pixW, pixH); err != nil {
		return err
	}
	if err := c.Mode(pipeline.Projection); err != nil {
		return err
	}
	if err := c.Perspective(cam.FovY, pixW/pixH, cam.Near, cam.Far); err != nil {
		return err
	}
	if err := c.Mode(pipeline.ModelView); err != nil {
		return err
	}
	return c.LookAt(cam.Eye(), cam.Target, Vec{Y: 1})
}
