// Package config reads per-exercise tunables from the environment. The
// defaults are the constants the exercises shipped with; overriding them is
// optional and only done through env vars (plus an optional .env file).
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Settings struct {
	GuessMin int `env:"GUESS_MIN" envDefault:"1"`
	GuessMax int `env:"GUESS_MAX" envDefault:"100"`

	HigherLowerMax   int `env:"HIGHER_LOWER_MAX" envDefault:"13"`
	HigherLowerLives int `env:"HIGHER_LOWER_LIVES" envDefault:"2"`
	HigherLowerToWin int `env:"HIGHER_LOWER_TO_WIN" envDefault:"10"`

	SubtractStartMin int `env:"SUBTRACT_START_MIN" envDefault:"20"`
	SubtractStartMax int `env:"SUBTRACT_START_MAX" envDefault:"30"`
	SubtractTakeMax  int `env:"SUBTRACT_TAKE_MAX" envDefault:"3"`

	MastermindDigits  int `env:"MASTERMIND_DIGITS" envDefault:"4"`
	MastermindGuesses int `env:"MASTERMIND_GUESSES" envDefault:"12"`

	TreasureGridSize int `env:"TREASURE_GRID_SIZE" envDefault:"10"`

	HangmanLives int `env:"HANGMAN_LIVES" envDefault:"5"`

	ResultsMaxTurns int `env:"RESULTS_MAX_TURNS" envDefault:"20"`

	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load parses settings from the environment. A missing .env file is not an
// error; a malformed environment value is.
func Load() (Settings, error) {
	_ = godotenv.Load()
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
