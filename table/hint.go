package table

// HintSession tracks the cards already suggested since the last move
type HintSession struct {
	visited map[*Card]struct{}
}

func NewHintSession() *HintSession {
	return &HintSession{visited: map[*Card]struct{}{}}
}

func (h *HintSession) Visit(c *Card) {
	h.visited[c] = struct{}{}
}

func (h *HintSession) Visited(c *Card) bool {
	_, ok := h.visited[c]
	return ok
}

func (h *HintSession) Len() int {
	return len(h.visited)
}

func (h *HintSession) Reset() {
	h.visited = map[*Card]struct{}{}
}

// CardAndStack is a suggested move: Card onto Stack
type CardAndStack struct {
	Card  *Card
	Stack *Stack
}
