package tui

const title = "Flame Decoration Simulator"

// Welcome is shown on the intro page and by --help.
const Welcome = `Welcome to the Flame Decoration Simulator!

Each simulation drives the 12 LEDs of the flame decoration board with a
different technique for making them feel like fire. The dots are placed
where the LEDs sit on the PCB, so what you see is what the board will show.

A terminal with 24-bit color and full unicode support is recommended.

Controls are listed at the bottom of the screen. Ctrl-C always exits.`

const (
	helpIntro = "Continue: any key, Quit: Ctrl-C"
	helpMenu  = "Navigate: ↑/↓, Select: Enter, Quit: Esc/q"
	helpSim   = "Intensity: ←/→, Back to menu: Esc/q"
)
