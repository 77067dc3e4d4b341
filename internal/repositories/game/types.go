package game

import "github.com/KirkDiggler/kostka/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type DeleteGameInput struct {
	GameID string
}

type GetActiveGamesInput struct {
}

type GetActiveGamesOutput struct {
	Games []*models.Game
}
