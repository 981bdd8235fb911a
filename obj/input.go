package obj

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the demo's per-frame commands.
type Input struct {
	// StartPressed is true on the frame S, Enter or the gamepad primary
	// button was pressed.
	StartPressed bool
	// ResetPressed is true on the frame R or the gamepad secondary button
	// was pressed.
	ResetPressed bool
	// ToggleLayered switches between the cutover and layered compositors.
	ToggleLayered bool
	// DebugToggled flips the debug overlay.
	DebugToggled bool
}

func NewInput() *Input {
	return &Input{}
}

// Update polls the keyboard and the first gamepad.
func (i *Input) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		os.Exit(0)
	}

	var gpStart, gpReset bool
	if ids := ebiten.GamepadIDs(); len(ids) > 0 {
		gid := ids[0]
		gpStart = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightBottom)
		gpReset = inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightRight)
	}

	i.StartPressed = inpututil.IsKeyJustPressed(ebiten.KeyS) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) || gpStart
	i.ResetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR) || gpReset
	i.ToggleLayered = inpututil.IsKeyJustPressed(ebiten.KeyL)
	i.DebugToggled = inpututil.IsKeyJustPressed(ebiten.KeyF3)
}
