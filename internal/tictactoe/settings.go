package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/entity"
)

// Messages holds the status texts. Formats take the piece as their only argument.
type Messages struct {
	IntroPrompt string
	FirstPiece  string
	NextPiece   string
	Winner      string
	Tie         string
}

type Settings struct {
	Messages         Messages
	NeutralColor     entity.RGB
	CelebrationColor entity.RGB
}

func DefaultSettings() Settings {
	return Settings{
		Messages: Messages{
			IntroPrompt: "Click the board to start",
			FirstPiece:  "First piece: %s",
			NextPiece:   "Next piece: %s",
			Winner:      "Winner: %s",
			Tie:         "Tie",
		},
		NeutralColor:     entity.RGB{R: 0xFF, G: 0xFF, B: 0xFF},
		CelebrationColor: entity.RGB{R: 0xFF, G: 0xD7, B: 0x00},
	}
}

func (that Messages) firstPiece(piece entity.Mark) string {
	return fmt.Sprintf(that.FirstPiece, piece)
}

func (that Messages) nextPiece(piece entity.Mark) string {
	return fmt.Sprintf(that.NextPiece, piece)
}

func (that Messages) winner(piece entity.Mark) string {
	return fmt.Sprintf(that.Winner, piece)
}
