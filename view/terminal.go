package view

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/logrusorgru/aurora"

	"toruslife/universe"
)

const clearCmd = "clear"

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Display renders the universe's text projection to the terminal
func (r *TerminalRenderer) Display(u *universe.Universe) {
	fmt.Print(u.Render())
}

// DisplayStatus prints the colored status line above the grid
func (r *TerminalRenderer) DisplayStatus(generation, population int, density float64, status string) {
	fmt.Printf("%s %d | %s %d | %s %.1f%% | %s %s\n",
		aurora.Cyan("Gen:"), generation,
		aurora.Green("Living:"), population,
		aurora.Yellow("Density:"), density,
		aurora.Magenta("Status:"), status,
	)
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
