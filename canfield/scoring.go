package canfield

import "github.com/minaorangina/solitaire/table"

const (
	pointsWasteToWaste        = 45
	pointsToFoundation        = 60
	pointsWasteToTableau      = 45
	pointsFoundationToTableau = -75
	pointsFlip                = 25
	pointsRecycle             = -200
)

// PointsForMove scores a move by its lead card's origin and destination.
// An origin equal to the destination is a card turned face up.
func (c *Canfield) PointsForMove(_ []*table.Card, originIDs, destinationIDs []int) int {
	if len(originIDs) == 0 || len(destinationIDs) == 0 {
		return 0
	}
	origin, dest := originIDs[0], destinationIDs[0]

	switch {
	case isWaste(origin) && isWaste(dest):
		return pointsWasteToWaste
	case (origin <= ReserveID || origin == StockID) && isFoundation(dest):
		return pointsToFoundation
	case isWaste(origin) && dest < WasteBackID:
		return pointsWasteToTableau
	case isFoundation(origin) && dest <= ReserveID:
		return pointsFoundationToTableau
	case origin == dest:
		return pointsFlip
	case isWaste(origin) && dest == StockID:
		return pointsRecycle
	}

	return 0
}
