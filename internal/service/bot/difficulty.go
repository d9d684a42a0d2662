package bot

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// DepthForDifficulty maps a difficulty name to a search depth. "hard" and
// anything unrecognised use hardDepth.
func DepthForDifficulty(difficulty string, hardDepth int) int {
	switch difficulty {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return min(3, hardDepth)
	default:
		return hardDepth
	}
}

func IsValidDifficulty(difficulty string) bool {
	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}
