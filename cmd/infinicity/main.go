package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Ericgi231/MTU-Graphics-OpenGL-InfiniCity/internal/game"
)

func main() {
	settingsPath := flag.String("settings", "", "optional YAML settings file")
	flag.Parse()

	s, err := game.LoadSettings(*settingsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(1)
	}

	if err := game.Run(s); err != nil {
		fmt.Fprintf(os.Stderr, "infinicity: %v\n", err)
		os.Exit(1)
	}
}
