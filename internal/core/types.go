package core

// Size describes the dimensions of a rendered field.
type Size struct {
	W int
	H int
}

// Field is a seeded raster the viewer can display. Cells returns one 8-bit
// intensity per pixel in row-major order.
type Field interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Field using an optional configuration map.
type Factory func(cfg map[string]string) Field

var fields = map[string]Factory{}

// Register adds a field factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	fields[name] = f
}

// Fields exposes the registry of available field factories.
func Fields() map[string]Factory {
	return fields
}
