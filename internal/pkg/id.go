package pkg

import "github.com/google/uuid"

// GenerateSessionID - generates a unique identifier for a game session.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePieceHandle - generates an opaque handle for a piece visual.
func GeneratePieceHandle() string {
	return "piece-" + uuid.NewString()
}
