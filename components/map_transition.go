package components

// Transition types
const (
	TransitionStairsDown = iota // Exit tile leading to the next level
	TransitionAmulet            // Final level: the amulet lies at the destination
)

// MapTransitionComponent describes how the player leaves a generated level
type MapTransitionComponent struct {
	TransitionType int   // Type of transition (stairs down or amulet)
	Level          int   // Depth of the level this transition belongs to
	Destination    Point // Where the exit tile or amulet sits
}

// NewMapTransitionComponent creates a new map transition component
func NewMapTransitionComponent(transitionType, level int, destination Point) *MapTransitionComponent {
	return &MapTransitionComponent{
		TransitionType: transitionType,
		Level:          level,
		Destination:    destination,
	}
}

// IsFinal reports whether this level holds the amulet rather than an exit
func (t *MapTransitionComponent) IsFinal() bool {
	return t.TransitionType == TransitionAmulet
}
