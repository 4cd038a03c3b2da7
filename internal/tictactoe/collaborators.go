package tictactoe

import "github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"

// PieceHandle identifies a piece visual created by the presentation layer.
// The controller only hands it back when clearing.
type PieceHandle string

type Display interface {
	SetStatusText(message string)
}

type Indicator interface {
	SetIndicatorColor(color entity.RGB)
}

type PieceVisuals interface {
	PlacePieceVisual(cell int, piece entity.Mark) PieceHandle
	ClearAllPieceVisuals(handles []PieceHandle)
}

// HoverAffordance is optional. A Presenter that also implements it gets hover requests.
type HoverAffordance interface {
	SetTileHoverAffordance(cell int, enabled bool)
}

// Presenter is everything the controller asks of the rendering side.
// Calls are fire-and-forget: failures stay inside the presenter.
type Presenter interface {
	Display
	Indicator
	PieceVisuals
}
