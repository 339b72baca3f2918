//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	Seed SeedInput
}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// SetStatus is a no-op in headless builds.
func (o *Overlay) SetStatus(string, bool) {}

// Capturing always reports false in headless builds.
func (o *Overlay) Capturing() bool { return false }

// Update never submits a seed in headless builds.
func (o *Overlay) Update() (int64, bool) { return 0, false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int, Theme) {}
