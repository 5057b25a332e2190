package pattern

// mustParse backs the built-in patterns; the inputs are compile-time
// constants, so a parse failure is a programming error.
func mustParse(name, s string) *Pattern {
	p, err := ParseString(name, s)
	if err != nil {
		panic("pattern: bad builtin " + name + ": " + err.Error())
	}
	return p
}

// Builtin patterns, usable without any store.
var (
	// Block is the smallest still life.
	Block = mustParse("block", `
OO
OO
`)

	// Pond is a 4x4 still life.
	Pond = mustParse("pond", `
.OO.
O..O
O..O
.OO.
`)

	// Blinker is the period-2 oscillator.
	Blinker = mustParse("blinker", `
OOO
`)

	// Glider travels diagonally by (1, 1) every 4 generations.
	Glider = mustParse("glider", `
.O.
..O
OOO
`)

	// RPentomino is the classic methuselah, active for over a thousand
	// generations.
	RPentomino = mustParse("r-pentomino", `
.OO
OO.
.O.
`)

	// GosperGun emits a glider every 30 generations.
	GosperGun = mustParse("gosper-glider-gun", `x = 36, y = 9
24bo$22bobo$12b2o6b2o12b2o$11bo3bo4b2o12b2o$2o8bo5bo3b2o$2o8bo3bob2o4b
obo$10bo5bo7bo$11bo3bo$12b2o!
`)
)

// Builtins maps name to built-in pattern.
var Builtins = map[string]*Pattern{
	Block.Name:      Block,
	Pond.Name:       Pond,
	Blinker.Name:    Blinker,
	Glider.Name:     Glider,
	RPentomino.Name: RPentomino,
	GosperGun.Name:  GosperGun,
}
