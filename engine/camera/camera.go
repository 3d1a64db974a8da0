package camera

// cameraImpl is the implementation of the Camera interface.
type cameraImpl struct {
	name   string
	fov    float32
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for a perspective camera in a loaded scene.
//
// Cameras are animation targets: the loader resolves asset property paths like
// "cameras/0/perspective/yfov" to a Camera plus a dotted sub-property path
// ("fov", "near", "far"), and the playback engine drives the property through
// the setters.
type Camera interface {
	// Name returns the camera's identifier.
	Name() string

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: the field of view
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: the near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: the far plane distance
	Far() float32

	// SetFov sets the vertical field of view in radians.
	//
	// Parameters:
	//   - fov: field of view in radians
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: the near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: the far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera configured with the provided options.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: a new Camera instance
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		fov:    0.8,
		aspect: 1.0,
		near:   0.1,
		far:    1000.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Name() string {
	return c.name
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.far = far
}
