package parameter

// Camera scale limits and smoothing
// Scale is a multiplier on world distances measured from the current pan point
const (
	// CameraMinScale is the zoom-out floor, strictly positive so the transform never collapses
	CameraMinScale = 0.1

	// CameraMaxScale is the zoom-in ceiling
	CameraMaxScale = 3.0

	// CameraInitialScale is the scale at scene start
	CameraInitialScale = 1.0

	// CameraDamping is the per-frame fraction of the remaining distance covered toward target
	CameraDamping = 0.1

	// CameraSnapEpsilon is the residual below which current snaps onto target
	CameraSnapEpsilon = 1e-6

	// CameraSingularEpsilon guards the focal solve when the new scale is ~1
	// At scale 1 the transform is the identity regardless of pan
	CameraSingularEpsilon = 1e-9
)

// Zoom gesture factors
const (
	// WheelZoomIn multiplies target scale per wheel notch toward the viewer
	WheelZoomIn = 1.05

	// WheelZoomOut multiplies target scale per wheel notch away from the viewer
	WheelZoomOut = 0.95

	// KeyPanStep is the screen pixel delta applied per pan key press
	KeyPanStep = 6.0
)
