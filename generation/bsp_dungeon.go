package generation

import (
	"rogue-builder/components"
	"rogue-builder/config"
)

const (
	bspMaxDepth = 6
	bspMinLeaf  = 10 // Minimum size of a node after splitting
)

// bspNode is a node in the binary space partitioning tree
type bspNode struct {
	area        components.Rect
	left, right *bspNode
	room        *components.Rect
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// BSPArchitect recursively halves the map, puts one room in every leaf and joins siblings.
// It is not part of the random rotation and is only used when asked for by name.
type BSPArchitect struct {
	cfg config.Generation
}

// NewBSPArchitect creates a binary space partitioning architect
func NewBSPArchitect(cfg config.Generation) *BSPArchitect {
	return &BSPArchitect{cfg: cfg}
}

// Name identifies the architect in logs
func (a *BSPArchitect) Name() string {
	return "bsp"
}

// Build splits, carves and connects.
// Random stream: the split pass (orientation coin only for squarish nodes, then the split offset),
// two padding rolls per leaf, then one Range(0, 2) per corridor, all in depth-first order.
func (a *BSPArchitect) Build(rng RandomSource) Layout {
	mapComp := components.NewMapComponent(a.cfg.Width, a.cfg.Height)

	root := &bspNode{area: components.NewRect(0, 0, mapComp.Width, mapComp.Height)}
	a.splitNode(root, 0, rng)

	var rooms []components.Rect
	a.createRooms(root, mapComp, rng, &rooms)
	a.connectRooms(root, mapComp, rng)

	layout := Layout{
		Map:   mapComp,
		Rooms: rooms,
	}

	if len(rooms) == 0 {
		// Too small to split or pad; fall back to an open center
		center := mapComp.Center()
		mapComp.SetTile(center, components.TileFloor)
		layout.PlayerStart = center
		return layout
	}

	layout.PlayerStart = rooms[0].Center()
	for _, room := range rooms[1:] {
		layout.SpawnCandidates = append(layout.SpawnCandidates, room.Center())
	}
	return layout
}

// splitNode halves the node across its longer side, or a random side when roughly square
func (a *BSPArchitect) splitNode(node *bspNode, depth int, rng RandomSource) {
	if depth >= bspMaxDepth {
		return
	}

	width, height := node.area.Width(), node.area.Height()

	var horizontal bool
	switch {
	case float64(width) > float64(height)*1.25:
		horizontal = false
	case float64(height) > float64(width)*1.25:
		horizontal = true
	default:
		horizontal = rng.Range(0, 2) == 0
	}

	size := width
	if horizontal {
		size = height
	}
	if size < 2*bspMinLeaf+1 {
		return
	}

	split := bspMinLeaf + rng.Range(0, size-2*bspMinLeaf)
	x, y := node.area.X1, node.area.Y1
	if horizontal {
		node.left = &bspNode{area: components.NewRect(x, y, width, split)}
		node.right = &bspNode{area: components.NewRect(x, y+split, width, height-split)}
	} else {
		node.left = &bspNode{area: components.NewRect(x, y, split, height)}
		node.right = &bspNode{area: components.NewRect(x+split, y, width-split, height)}
	}

	a.splitNode(node.left, depth+1, rng)
	a.splitNode(node.right, depth+1, rng)
}

// createRooms carves a padded room into every leaf, collecting them left to right
func (a *BSPArchitect) createRooms(node *bspNode, mapComp *components.MapComponent, rng RandomSource, rooms *[]components.Rect) {
	if !node.isLeaf() {
		a.createRooms(node.left, mapComp, rng, rooms)
		a.createRooms(node.right, mapComp, rng, rooms)
		return
	}

	padLeft := 1 + rng.Range(0, 3)
	padTop := 1 + rng.Range(0, 3)
	width := node.area.Width() - 2*padLeft
	height := node.area.Height() - 2*padTop
	if width < 4 || height < 4 {
		return
	}

	room := components.NewRect(node.area.X1+padLeft, node.area.Y1+padTop, width, height)
	for _, p := range room.Points() {
		mapComp.SetTile(p, components.TileFloor)
	}
	node.room = &room
	*rooms = append(*rooms, room)
}

// connectRooms joins one room from each child subtree, then recurses
func (a *BSPArchitect) connectRooms(node *bspNode, mapComp *components.MapComponent, rng RandomSource) {
	if node.isLeaf() {
		return
	}

	leftRoom, rightRoom := findRoom(node.left), findRoom(node.right)
	if leftRoom != nil && rightRoom != nil {
		from, to := leftRoom.Center(), rightRoom.Center()
		if rng.Range(0, 2) == 0 {
			createHorizontalCorridor(mapComp, from.X, to.X, from.Y)
			createVerticalCorridor(mapComp, from.Y, to.Y, to.X)
		} else {
			createVerticalCorridor(mapComp, from.Y, to.Y, from.X)
			createHorizontalCorridor(mapComp, from.X, to.X, to.Y)
		}
	}

	a.connectRooms(node.left, mapComp, rng)
	a.connectRooms(node.right, mapComp, rng)
}

// findRoom returns the first room in the subtree, or nil
func findRoom(node *bspNode) *components.Rect {
	if node.room != nil {
		return node.room
	}
	if node.isLeaf() {
		return nil
	}
	if room := findRoom(node.left); room != nil {
		return room
	}
	return findRoom(node.right)
}
