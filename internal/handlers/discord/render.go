package discord

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/kostka/internal/engine"
	"github.com/KirkDiggler/kostka/internal/models"
	"github.com/KirkDiggler/kostka/internal/services/game"
	"github.com/bwmarrin/discordgo"
)

// Component custom IDs carry the game ID after a colon
const (
	ButtonRoll = "kostka_roll"
	ButtonStop = "kostka_stop"
	SelectBank = "kostka_bank"
)

const (
	colorActive    = 0x3498db
	colorCompleted = 0xf1c40f
	colorError     = 0xff0000
)

var dieFaces = []string{"?", "⚀", "⚁", "⚂", "⚃", "⚄", "⚅"}

// componentID joins a component name and a game ID
func componentID(name, gameID string) string {
	return name + ":" + gameID
}

// parseComponentID splits a custom ID into component name and game ID
func parseComponentID(customID string) (string, string) {
	name, gameID, _ := strings.Cut(customID, ":")
	return name, gameID
}

// parseBankValues turns select menu values into roll indices
func parseBankValues(values []string) ([]int, error) {
	indices := make([]int, 0, len(values))
	for _, value := range values {
		idx, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid die %q: %w", value, err)
		}
		indices = append(indices, idx)
	}
	return indices, nil
}

func formatDie(face int) string {
	if face < 1 || face >= len(dieFaces) {
		return dieFaces[0]
	}
	return fmt.Sprintf("%s %d", dieFaces[face], face)
}

func formatDice(faces []int) string {
	if len(faces) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(faces))
	for _, face := range faces {
		parts = append(parts, formatDie(face))
	}
	return strings.Join(parts, "  ")
}

// describeResult narrates an accepted action from the acting participant's point of view
func describeResult(name string, result *engine.Result) []string {
	var lines []string

	switch result.Action.Type {
	case engine.ActionRoll:
		lines = append(lines, fmt.Sprintf("🎲 **%s** rolled %s", name, formatDice(result.Roll)))
		if result.IsBust {
			lines = append(lines, fmt.Sprintf("💥 **%s** busted and lost the turn", name))
		}
	case engine.ActionBank:
		lines = append(lines, fmt.Sprintf("📥 **%s** banked %d points", name, result.BankedScore))
		if result.IsHotDice {
			lines = append(lines, fmt.Sprintf("🔥 Hot Dice! **%s** must roll all six again", name))
		}
	case engine.ActionStop:
		if result.EndedTurn != nil {
			lines = append(lines, fmt.Sprintf("✋ **%s** stopped with %d (total %d)", name, result.EndedTurn.TurnScore, result.EndedTurn.TotalScore))
		}
		if result.GameOver {
			lines = append(lines, fmt.Sprintf("🏆 **%s** wins!", name))
		}
	}

	return lines
}

// describeRecord summarises a player's finished games
func describeRecord(player *models.Player) string {
	if player == nil || player.GamesPlayed == 0 {
		return ""
	}
	return fmt.Sprintf("📊 Record so far: %d won of %d played", player.GamesWon, player.GamesPlayed)
}

func describeLine(line *game.OpponentLine) string {
	if line == nil {
		return ""
	}
	return fmt.Sprintf("💬 **%s**: %s", line.Name, line.Line)
}

// describeSubmit narrates a human action and any reaction to it
func describeSubmit(name string, output *game.SubmitActionOutput) []string {
	lines := describeResult(name, output.Result)
	if reaction := describeLine(output.Reaction); reaction != "" {
		lines = append(lines, reaction)
	}
	return lines
}

// describeOpponents narrates every opponent step
func describeOpponents(g *models.Game, steps []*game.OpponentStep) []string {
	var lines []string
	for _, step := range steps {
		name := g.Participants[step.ParticipantIndex].Name
		lines = append(lines, describeResult(name, step.Result)...)
		if line := describeLine(step.Line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func renderScores(g *models.Game) string {
	var sb strings.Builder
	for i, participant := range g.Participants {
		marker := "▫️"
		if g.Status.IsActive() && i == g.CurrentPlayerIndex {
			marker = "▶️"
		}
		if i == g.WinnerIndex {
			marker = "🏆"
		}
		fmt.Fprintf(&sb, "%s **%s**: %d\n", marker, participant.Name, participant.TotalScore)
	}
	return sb.String()
}

func renderTurn(g *models.Game) string {
	turn := g.Turn
	current := g.CurrentParticipant()
	if turn == nil || current == nil {
		return "-"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s** is on turn\n", current.Name)
	if len(turn.RolledDice) > 0 && turn.Phase == models.TurnPhaseDiceRolled {
		fmt.Fprintf(&sb, "Roll: %s\n", formatDice(turn.RolledDice))
	}
	fmt.Fprintf(&sb, "Turn score: %d · Dice left: %d", turn.TurnScore, turn.RemainingDice())

	switch turn.Phase {
	case models.TurnPhaseAwaitingRoll:
		if turn.IsHotDice {
			sb.WriteString("\n🔥 Hot Dice, roll all six again")
		}
	case models.TurnPhaseDiceRolled:
		sb.WriteString("\nPick the dice to bank")
	case models.TurnPhaseAwaitingRollOrStop:
		sb.WriteString("\nRoll again or stop")
	}

	return sb.String()
}

// renderBoard builds the game embed with the narration of what just happened
func renderBoard(g *models.Game, events []string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Kostková výzva · first to %d", g.TargetScore),
		Description: strings.Join(events, "\n"),
		Color:       colorActive,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Scores",
				Value: renderScores(g),
			},
		},
	}

	if g.Status.IsCompleted() {
		embed.Color = colorCompleted
		if winner := g.Winner(); winner != nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Game over",
				Value: fmt.Sprintf("**%s** reached %d in %d turns", winner.Name, winner.TotalScore, winner.TurnsTaken),
			})
		}
		return embed
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Turn",
		Value: renderTurn(g),
	})

	if g.LastTurn != nil {
		last := g.LastTurn
		value := fmt.Sprintf("**%s** banked %d", last.PlayerName, last.TurnScore)
		if last.IsBust {
			value = fmt.Sprintf("**%s** busted on %s", last.PlayerName, formatDice(last.LastRoll))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Last turn",
			Value: value,
		})
	}

	return embed
}

// renderComponents builds the controls for the human on turn
func renderComponents(g *models.Game) []discordgo.MessageComponent {
	current := g.CurrentParticipant()
	if !g.Status.IsActive() || current == nil || !current.IsHuman {
		return []discordgo.MessageComponent{}
	}

	available := make(map[engine.ActionType]bool)
	for _, action := range engine.AvailableActions(g) {
		available[action] = true
	}

	var components []discordgo.MessageComponent

	if available[engine.ActionBank] {
		options := make([]discordgo.SelectMenuOption, 0, len(g.Turn.RolledDice))
		for idx, face := range g.Turn.RolledDice {
			options = append(options, discordgo.SelectMenuOption{
				Label: fmt.Sprintf("Die %d: %s", idx+1, formatDie(face)),
				Value: strconv.Itoa(idx),
			})
		}

		minValues := 1
		components = append(components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.SelectMenu{
					MenuType:    discordgo.StringSelectMenu,
					CustomID:    componentID(SelectBank, g.ID),
					Placeholder: "Pick the dice to bank",
					MinValues:   &minValues,
					MaxValues:   len(options),
					Options:     options,
				},
			},
		})
	}

	components = append(components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Roll",
				Style:    discordgo.PrimaryButton,
				CustomID: componentID(ButtonRoll, g.ID),
				Disabled: !available[engine.ActionRoll],
				Emoji: &discordgo.ComponentEmoji{
					Name: "🎲",
				},
			},
			discordgo.Button{
				Label:    "Stop",
				Style:    discordgo.SuccessButton,
				CustomID: componentID(ButtonStop, g.ID),
				Disabled: !available[engine.ActionStop],
				Emoji: &discordgo.ComponentEmoji{
					Name: "✋",
				},
			},
		},
	})

	return components
}

// renderHallOfFame builds the Hall of Fame embed
func renderHallOfFame(entries []*models.HallOfFameEntry) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🏆 Hall of Fame",
		Color: colorCompleted,
	}

	if len(entries) == 0 {
		embed.Description = "Nobody has beaten the table yet."
		return embed
	}

	var sb strings.Builder
	for rank, entry := range entries {
		fmt.Fprintf(&sb, "%d. **%s**: %d turns, %s, %d points\n",
			rank+1, entry.PlayerName, entry.TurnCount, entry.Duration.Round(time.Second), entry.Score)
	}
	embed.Description = sb.String()

	return embed
}
