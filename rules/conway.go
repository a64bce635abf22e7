package rules

/*
ApplyConwayRules determines the next state of a cell from its current state
and live neighbour count:

  - a live cell with fewer than two live neighbours dies (underpopulation)
  - a live cell with two or three live neighbours survives
  - a live cell with more than three live neighbours dies (overpopulation)
  - a dead cell with exactly three live neighbours becomes alive (reproduction)

All four rules collapse to: (alive && neighbours == 2) || neighbours == 3
*/
func ApplyConwayRules(neighbours int, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
