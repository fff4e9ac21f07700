package ranger

// ViewSpace maps the logical view coordinate system onto device pixels.
// The view is stretched to fill the window; when Centered is set the view
// origin sits at the window center instead of the top-left corner.
type ViewSpace struct {
	WindowWidth, WindowHeight float64
	ViewWidth, ViewHeight     float64
	Centered                  bool

	matrix    AffineTransform
	invMatrix AffineTransform
	computed  bool
}

// NewViewSpace creates a view space for the given window and view sizes.
// A zero view size falls back to the window size.
func NewViewSpace(windowW, windowH, viewW, viewH float64, centered bool) *ViewSpace {
	if viewW <= 0 {
		viewW = windowW
	}
	if viewH <= 0 {
		viewH = windowH
	}
	return &ViewSpace{
		WindowWidth:  windowW,
		WindowHeight: windowH,
		ViewWidth:    viewW,
		ViewHeight:   viewH,
		Centered:     centered,
	}
}

// Transform returns the view-to-device matrix:
// Translate(center) * Scale(window / view), center omitted when not centered.
func (v *ViewSpace) Transform() AffineTransform {
	if v.computed {
		return v.matrix
	}
	sx := v.WindowWidth / v.ViewWidth
	sy := v.WindowHeight / v.ViewHeight
	m := NewScale(sx, sy)
	if v.Centered {
		m = NewTranslate(v.WindowWidth/2, v.WindowHeight/2).Multiply(m)
	}
	v.matrix = m
	v.invMatrix = m.Invert()
	v.computed = true
	return m
}

// ViewToDevice converts view coordinates to device pixels.
func (v *ViewSpace) ViewToDevice(x, y float64) (float64, float64) {
	return v.Transform().TransformPoint(x, y)
}

// DeviceToView converts device pixels to view coordinates.
func (v *ViewSpace) DeviceToView(x, y float64) (float64, float64) {
	v.Transform()
	return v.invMatrix.TransformPoint(x, y)
}

// Resize updates the window size, e.g. after the platform reports a new
// layout.
func (v *ViewSpace) Resize(windowW, windowH float64) {
	v.WindowWidth, v.WindowHeight = windowW, windowH
	v.computed = false
}
