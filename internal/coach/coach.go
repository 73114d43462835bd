// Package coach suggests a blackjack move for the player's current hand.
// With an API key it asks a chat model; without one, RuleAdvice gives the
// fixed-threshold answer.
package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"gochallenges/internal/blackjack"
)

type Move string

const (
	MoveHit   Move = "hit"
	MoveStand Move = "stand"
)

// RuleAdvice is the offline fallback: hit below 17, stand at 17 or more.
// Busted hands get no advice beyond standing.
func RuleAdvice(total int) Move {
	if total < 17 {
		return MoveHit
	}
	return MoveStand
}

type Coach struct {
	client openai.Client
	model  string
}

func New(apiKey, model string) *Coach {
	return &Coach{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Advise asks the model whether to hit or stand on the given hand. Any
// unparseable reply falls back to RuleAdvice.
func (c *Coach) Advise(ctx context.Context, hand *blackjack.Hand) (Move, error) {
	total := hand.Evaluate()
	names := make([]string, 0, len(hand.Cards))
	for _, card := range hand.Cards {
		names = append(names, card.String())
	}
	prompt := fmt.Sprintf(
		"You are playing blackjack. The dealer will draw exactly two cards after you stand. Your hand is %s (total %d). Answer with exactly one word: hit or stand.",
		strings.Join(names, ", "), total,
	)

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return RuleAdvice(total), nil
	}
	answer := strings.ToLower(strings.TrimSpace(resp.Choices[0].Message.Content))
	switch {
	case strings.Contains(answer, "hit"):
		return MoveHit, nil
	case strings.Contains(answer, "stand"):
		return MoveStand, nil
	default:
		return RuleAdvice(total), nil
	}
}
