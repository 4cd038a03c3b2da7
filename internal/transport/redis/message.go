package redis

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/tictactoe"
)

// input actions
const (
	ActionBoardClicked = "board:clicked"
	ActionCellClicked  = "cell:clicked"
	ActionCellHovered  = "cell:hovered"
)

// render actions
const (
	ActionStatusText     = "status:text"
	ActionIndicatorColor = "indicator:color"
	ActionPiecePlace     = "piece:place"
	ActionPieceClear     = "piece:clear"
	ActionTileHover      = "tile:hover"
	ActionGameState      = "game:state"
)

// Message is the envelope for both channels.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CellPayload struct {
	Cell *int `json:"cell"`
}

type HoverPayload struct {
	Cell     *int `json:"cell"`
	Hovering bool `json:"hovering"`
}

type StatusPayload struct {
	Text string `json:"text"`
}

type IndicatorPayload struct {
	Color string     `json:"color"`
	RGB   entity.RGB `json:"rgb"`
}

type PiecePayload struct {
	Handle tictactoe.PieceHandle `json:"handle"`
	Cell   int                   `json:"cell"`
	Piece  entity.Mark           `json:"piece"`
}

type ClearPayload struct {
	Handles []tictactoe.PieceHandle `json:"handles"`
}

type TileHoverPayload struct {
	Cell    int  `json:"cell"`
	Enabled bool `json:"enabled"`
}

type StatePayload struct {
	SessionID string             `json:"session_id"`
	Game      tictactoe.Snapshot `json:"game"`
}

// Channels names the pub/sub channels of one session.
type Channels struct {
	Input  string
	Render string
}

func NewChannels(prefix, sessionID string) Channels {
	base := prefix + ":" + sessionID

	return Channels{
		Input:  base + ":input",
		Render: base + ":render",
	}
}
