package main

import (
	"fmt"
	"math/rand"

	"github.com/fatih/color"
)

func createRand2DArray(n, min, max int, rng *rand.Rand) [][]int {
	arr := make([][]int, n)
	for i := range arr {
		arr[i] = make([]int, n)
		for j := range arr[i] {
			arr[i][j] = min + rng.Intn(max-min+1)
		}
	}
	return arr
}

func print2DArray(arr [][]int) {
	for _, row := range arr {
		for _, elem := range row {
			fmt.Printf("%4d", elem)
		}
		fmt.Println()
	}
}

var cellColors = []*color.Color{
	color.New(color.BgRed),
	color.New(color.BgGreen),
	color.New(color.BgBlue),
	color.New(color.BgYellow),
	color.New(color.BgMagenta),
}

func print2DArrayColored(arr [][]int) {
	for _, row := range arr {
		for _, elem := range row {
			cellColors[elem%len(cellColors)].Print(" ")
		}
		fmt.Println()
	}
}

func main() {
	rng := rand.New(rand.NewSource(rand.Int63()))
	arr := createRand2DArray(10, 0, 15, rng)
	print2DArray(arr)
	print2DArrayColored(arr)
}
