package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/fatih/color"
)

type joke struct {
	question string
	answer   string
}

var jokes = []joke{
	{"Why won’t the elephant use the computer?", "He’s afraid of the mouse!"},
	{"Which are the stronger days of the week?", "Saturday and Sunday. The rest are weekdays."},
	{"Which runs faster, hot or cold?", "Hot. Everyone can catch a cold."},
	{"What did the math book tell the pencil?", "I have a lot of problems."},
	{"Where can you find an ocean without water?", "on a map!"},
	{"Why do fish swim in salt water?", "Pepper makes them sneeze."},
	{"What is a robot’s favorite snack?", "Computer chips!"},
	{"How did the soldier fit his tank in his house?", "It was a fish tank!"},
	{"Why did the computer go to the doctors?", "It had a virus."},
	{"Why did the man throw a clock out the window?", "He wanted time to fly."},
	{"Where do cows go on dates?", "MOOOOvies"},
	{"What kind of snack do you have during a scary movie?", "I scream (ice cream)"},
	{"How can you tell the ocean is friendly?", "It waves!"},
	{"How do small children travel?", "In mini-vans"},
	{"What has  wheels and flies?", "a garbage truck!"},
	{"Why didn’t the skeleton go to the party?", "He had NO BODY to go with."},
	{"What kind of witch likes the beach?", "a SAND witch (sandwich)!"},
	{"What kind of key does not open a lock?", "a mon – KEY!"},
	{"What always falls and never gets hurt?", "rain!"},
	{"What letters are not in the alphabet?", "The ones in the mail."},
	{"Why did the boy throw the butter out the window?", "to see a butterfly!"},
	{"What room is a dead man most afraid of?", "The living room!"},
	{"What did one wall say to the other?", "Hey, let’s meet in the corner."},
	{"Why do birds fly south in the winter?", "Because it’s too far to walk!"},
	{"Why is six afraid of seven?", "Because 7 ATE 9"},
}

var answerColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgWhite),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiWhite),
}

func randomColor(rng *rand.Rand) *color.Color {
	return answerColors[rng.Intn(len(answerColors))]
}

func main() {
	rng := rand.New(rand.NewSource(rand.Int63()))
	j := jokes[rng.Intn(len(jokes))]

	fmt.Printf("%s (press enter) ", j.question)
	if _, err := bufio.NewReader(os.Stdin).ReadString('\n'); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}

	randomColor(rng).Println(j.answer)
}
