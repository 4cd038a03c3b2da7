package tictactoe

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
)

// Snapshot is the observable game state handed to the presentation layer.
type Snapshot struct {
	Phase   entity.Phase                  `json:"phase"`
	Board   [entity.CellCount]entity.Mark `json:"board"`
	Current entity.Mark                   `json:"current"`
	Next    entity.Mark                   `json:"next"`
	Winner  entity.Mark                   `json:"winner"`
	Outcome string                        `json:"outcome"`
	Status  string                        `json:"status"`
	Moves   int                           `json:"moves"`
}

// GameController owns the phase machine, the board and the turn order of one game session.
// It processes one input at a time and is not safe for concurrent use.
type GameController struct {
	logger    *slog.Logger
	presenter Presenter
	hover     HoverAffordance
	settings  Settings

	board   entity.Board
	phase   entity.Phase
	current entity.Mark
	next    entity.Mark
	winner  entity.Mark
	status  string
	handles []PieceHandle
}

// NewGameController builds a controller and enters Intro right away.
func NewGameController(logger *slog.Logger, presenter Presenter, settings Settings) *GameController {
	hover, _ := presenter.(HoverAffordance)

	controller := &GameController{
		logger:    logger.With("component", "game_controller"),
		presenter: presenter,
		hover:     hover,
		settings:  settings,
	}

	controller.enterIntro()

	return controller
}

// OnBoardClicked starts a game from Intro and returns to Intro from Celebration.
func (that *GameController) OnBoardClicked() error {
	switch that.phase {
	case entity.PhaseIntro:
		that.enterPlay()
	case entity.PhaseCelebration:
		that.enterIntro()
	default:
		that.logger.Debug("board click ignored", "phase", that.phase)
	}

	return nil
}

// OnCellClicked places the current piece during Play. In Intro any cell counts as a board tap.
// A returned error means the click was rejected and nothing changed.
func (that *GameController) OnCellClicked(cell int) error {
	switch that.phase {
	case entity.PhaseIntro:
		that.enterPlay()
		return nil
	case entity.PhaseCelebration:
		return apperror.ErrGameFinished
	}

	return that.makeTurn(cell)
}

// OnCellHovered drives the tile hover affordance. It is a no-op when the presenter has none.
func (that *GameController) OnCellHovered(cell int, hovering bool) error {
	if _, err := that.board.CellState(cell); err != nil {
		return err
	}

	if that.hover == nil {
		return nil
	}

	if !hovering {
		that.hover.SetTileHoverAffordance(cell, false)
		return nil
	}

	if that.phase.IsPlay() && that.board.IsEmpty(cell) {
		that.hover.SetTileHoverAffordance(cell, true)
	}

	return nil
}

func (that *GameController) makeTurn(cell int) error {
	log := that.logger.With("method", "makeTurn", "cell", cell, "piece", that.current)

	piece := that.current
	if err := that.board.PlacePiece(cell, piece); err != nil {
		log.Debug("turn rejected", "error", err)
		return fmt.Errorf("invalid turn: %w", err)
	}

	that.handles = append(that.handles, that.presenter.PlacePieceVisual(cell, piece))
	if that.hover != nil {
		that.hover.SetTileHoverAffordance(cell, false)
	}

	that.current, that.next = that.next, that.current
	that.setStatus(that.settings.Messages.nextPiece(that.current))

	switch outcome := that.board.EvaluateOutcome(); outcome.Kind {
	case entity.Win:
		that.enterCelebration(outcome.Winner)
	case entity.Draw:
		that.enterCelebration(entity.EmptyCell)
	case entity.InProgress:
		log.Debug("turn accepted", "next", that.current)
	}

	return nil
}

func (that *GameController) enterIntro() {
	that.board.Reset()
	that.current = entity.PlayerX
	that.next = entity.PlayerO
	that.winner = entity.EmptyCell

	if len(that.handles) > 0 {
		that.presenter.ClearAllPieceVisuals(that.handles)
		that.handles = nil
	}

	that.disableHover()
	that.transition(entity.PhaseIntro)
	that.setStatus(that.settings.Messages.IntroPrompt)
	that.presenter.SetIndicatorColor(that.settings.NeutralColor)
}

func (that *GameController) enterPlay() {
	that.transition(entity.PhasePlay)
	that.setStatus(that.settings.Messages.firstPiece(that.current))
}

// enterCelebration freezes the board. An empty winner means a tie.
func (that *GameController) enterCelebration(winner entity.Mark) {
	that.winner = winner
	that.disableHover()
	that.transition(entity.PhaseCelebration)

	if winner == entity.EmptyCell {
		that.setStatus(that.settings.Messages.Tie)
	} else {
		that.setStatus(that.settings.Messages.winner(winner))
	}

	that.presenter.SetIndicatorColor(that.settings.CelebrationColor)
}

func (that *GameController) transition(phase entity.Phase) {
	that.logger.Info("phase changed", "from", that.phase, "to", phase, "winner", that.winner)
	that.phase = phase
}

func (that *GameController) setStatus(message string) {
	that.status = message
	that.presenter.SetStatusText(message)
}

func (that *GameController) disableHover() {
	if that.hover == nil {
		return
	}

	for cell := 0; cell < entity.CellCount; cell++ {
		that.hover.SetTileHoverAffordance(cell, false)
	}
}

func (that *GameController) Phase() entity.Phase {
	return that.phase
}

func (that *GameController) CurrentPiece() entity.Mark {
	return that.current
}

func (that *GameController) NextPiece() entity.Mark {
	return that.next
}

// Winner is empty unless the game ended with three in a row.
func (that *GameController) Winner() entity.Mark {
	return that.winner
}

func (that *GameController) Outcome() entity.Outcome {
	return that.board.EvaluateOutcome()
}

func (that *GameController) Cell(cell int) (entity.Mark, error) {
	return that.board.CellState(cell)
}

func (that *GameController) StatusText() string {
	return that.status
}

func (that *GameController) Snapshot() Snapshot {
	return Snapshot{
		Phase:   that.phase,
		Board:   that.board.Cells(),
		Current: that.current,
		Next:    that.next,
		Winner:  that.winner,
		Outcome: that.board.EvaluateOutcome().String(),
		Status:  that.status,
		Moves:   that.board.Occupied(),
	}
}
