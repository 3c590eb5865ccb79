package shell

import (
	"github.com/olekukonko/tablewriter"
)

// help prints the command table.
func (s *Shell) help() {
	table := tablewriter.NewWriter(s.out)
	table.Header("Command", "Description")

	table.Append("h", "print this message")
	table.Append("<enter>", "display elapsed time")
	table.Append("s", "toggle stopwatch")
	table.Append("r", "reset stopwatch")
	table.Append("c", "change elapsed time")
	table.Append("o", "offset elapsed time")
	table.Append("n", "name stopwatch")
	table.Append("p", "set display precision")
	table.Append("l", "about tick")
	table.Append("q", "quit")

	table.Render()
}
