package ebitenengine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/e0328eric/dioteko"
)

// toggle pushes one flag bit to Ebitengine.
type toggle struct {
	flag  dioteko.ConfigFlags
	apply func(on bool)
}

var toggles = []toggle{
	{dioteko.FlagFullscreen, ebiten.SetFullscreen},
	{dioteko.FlagResizable, func(on bool) {
		mode := ebiten.WindowResizingModeDisabled
		if on {
			mode = ebiten.WindowResizingModeEnabled
		}
		ebiten.SetWindowResizingMode(mode)
	}},
	{dioteko.FlagUndecorated, func(on bool) { ebiten.SetWindowDecorated(!on) }},
	{dioteko.FlagTopmost, ebiten.SetWindowFloating},
	{dioteko.FlagAlwaysRun, ebiten.SetRunnableOnUnfocused},
	{dioteko.FlagVsyncHint, ebiten.SetVsyncEnabled},
}

// placement is the window placement call needed for a flag change.
type placement uint8

const (
	placeNone placement = iota
	placeMaximize
	placeMinimize
	placeRestore
)

// placementChange decides the placement call that moves the window from
// prev to next. Setting a bit wins over clearing one; maximize wins over
// minimize when both are newly set.
func placementChange(prev, next dioteko.ConfigFlags) placement {
	const both = dioteko.FlagMaximized | dioteko.FlagMinimized
	changed := prev ^ next
	switch {
	case changed&both == 0:
		return placeNone
	case changed.Has(dioteko.FlagMaximized) && next.Has(dioteko.FlagMaximized):
		return placeMaximize
	case changed.Has(dioteko.FlagMinimized) && next.Has(dioteko.FlagMinimized):
		return placeMinimize
	case next&both == 0:
		return placeRestore
	default:
		return placeNone
	}
}

// applyFlags pushes the bits that differ between prev and next. Hidden,
// HighDPI and InterlacedHint have no runtime Ebitengine counterpart and are
// only recorded; Unfocused, Transparent and HighDPI are read once when the
// game loop starts.
func applyFlags(prev, next dioteko.ConfigFlags) {
	changed := prev ^ next
	for _, t := range toggles {
		if changed.Has(t.flag) {
			t.apply(next.Has(t.flag))
		}
	}
	switch placementChange(prev, next) {
	case placeMaximize:
		ebiten.MaximizeWindow()
	case placeMinimize:
		ebiten.MinimizeWindow()
	case placeRestore:
		ebiten.RestoreWindow()
	}
}
