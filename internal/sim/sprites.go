package sim

import "github.com/vovakirdan/atomas/internal/core"

// Sprite is the render-side copy of a ball.
type Sprite struct {
	ID       EntityID
	Position core.Vec2
	Radius   float32
	Color    core.Color
}

// Sprites is a RenderSink that keeps the latest view of every ball in
// insertion order. Frontends draw from it.
type Sprites struct {
	index map[EntityID]int
	list  []Sprite
}

// NewSprites creates an empty sprite table.
func NewSprites() *Sprites {
	return &Sprites{index: make(map[EntityID]int)}
}

// Add registers a sprite. Re-adding an id replaces it in place.
func (s *Sprites) Add(id EntityID, pos core.Vec2, radius float32, color core.Color) {
	sp := Sprite{ID: id, Position: pos, Radius: radius, Color: color}
	if i, ok := s.index[id]; ok {
		s.list[i] = sp
		return
	}
	s.index[id] = len(s.list)
	s.list = append(s.list, sp)
}

// Move updates the position of a sprite. Unknown ids are ignored.
func (s *Sprites) Move(id EntityID, pos core.Vec2) {
	if i, ok := s.index[id]; ok {
		s.list[i].Position = pos
	}
}

// Remove forgets a sprite.
func (s *Sprites) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	s.list = append(s.list[:i], s.list[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.list); j++ {
		s.index[s.list[j].ID] = j
	}
}

// Len returns the number of sprites.
func (s *Sprites) Len() int {
	return len(s.list)
}

// Get returns the sprite for id.
func (s *Sprites) Get(id EntityID) (Sprite, bool) {
	i, ok := s.index[id]
	if !ok {
		return Sprite{}, false
	}
	return s.list[i], true
}

// Each calls fn for every sprite, oldest first.
func (s *Sprites) Each(fn func(Sprite)) {
	for _, sp := range s.list {
		fn(sp)
	}
}

var _ RenderSink = (*Sprites)(nil)
