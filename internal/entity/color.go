package entity

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-tabletop/internal/apperror"
)

// RGB is the ambient indicator color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// ParseRGB reads a "#RRGGBB" or "RRGGBB" hex color.
func ParseRGB(value string) (RGB, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(value), "#")
	if len(raw) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", apperror.ErrInvalidColor, value)
	}

	b, err := hex.DecodeString(raw)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %w", apperror.ErrInvalidColor, value, err)
	}

	return RGB{R: b[0], G: b[1], B: b[2]}, nil
}

func (that RGB) String() string {
	return fmt.Sprintf("#%02X%02X%02X", that.R, that.G, that.B)
}
