// Package main is the entry point for the tebowski CLI tool, which ingests a
// fantasy league game log and computes ratings, standings, streaks, power
// index, and head-to-head analytics over league history.
package main

import "github.com/Chockers1/TheBigTebowski/cmd"

func main() {
	cmd.Execute()
}
