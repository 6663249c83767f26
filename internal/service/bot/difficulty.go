package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Depth maps a difficulty to a search depth in plies. Medium is the
// classic four-ply search.
func (d BotDifficulty) Depth() int {
	switch d {
	case DifficultyEasy:
		return 2
	case DifficultyHard:
		return 6
	default:
		return MINIMAX_DEPTH
	}
}
