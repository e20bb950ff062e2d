package main

import "github.com/if23b108/GildedRose-Refactoring-Kata/internal/cli"

func main() {
	cli.Execute()
}
