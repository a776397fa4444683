package game

import (
	"context"

	"github.com/KirkDiggler/pig/internal/interaction"
	"github.com/KirkDiggler/pig/internal/models"
)

// decide asks the player for hold or roll until they give a valid answer.
// Invalid answers are reported and asked again in a loop so adversarial input
// cannot grow the stack
func decide(ctx context.Context, chooser interaction.Chooser, player *models.Player) (models.Intent, error) {
	for {
		if err := ctx.Err(); err != nil {
			return models.IntentUndecided, err
		}

		output, err := chooser.ChooseAction(ctx, &interaction.ChooseActionInput{
			PlayerName: player.Name,
		})
		if err != nil {
			return models.IntentUndecided, err
		}

		intent, err := models.ParseIntent(output.Choice)
		if err == nil {
			player.LastIntent = intent
			return intent, nil
		}

		if err := chooser.InvalidChoice(ctx, &interaction.InvalidChoiceInput{
			Choice: output.Choice,
		}); err != nil {
			return models.IntentUndecided, err
		}
	}
}
