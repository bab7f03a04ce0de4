package convert

// Target is one output resolution of the panel.
type Target struct {
	Width  int
	Height int
	Suffix string
}

var (
	Portrait  = Target{Width: 172, Height: 320}
	Landscape = Target{Width: 320, Height: 172, Suffix: "_land"}
)

// Targets are always written portrait first.
func Targets() []Target {
	return []Target{Portrait, Landscape}
}

func (t Target) Symbol(name string) string {
	return name + t.Suffix
}
