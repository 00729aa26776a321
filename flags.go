package dioteko

import (
	"fmt"
	"math/bits"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFlags is a bitmask of independent window configuration toggles.
// Values can be combined with bitwise OR (e.g. FlagResizable | FlagVsyncHint).
// No combination is rejected; the engine resolves conflicts.
//
// Once handed to WindowBuilder.Build, the session's copy is the single
// source of truth: every mutator updates it and pushes the whole mask.
type ConfigFlags uint32

const (
	FlagFullscreen     ConfigFlags = 0x00000002 // fullscreen mode
	FlagResizable      ConfigFlags = 0x00000004 // user-resizable window
	FlagUndecorated    ConfigFlags = 0x00000008 // no window decorations
	FlagTransparent    ConfigFlags = 0x00000010 // transparent framebuffer
	FlagMSAA4x         ConfigFlags = 0x00000020 // 4x multisample anti-aliasing hint
	FlagVsyncHint      ConfigFlags = 0x00000040 // synchronize to vertical blank
	FlagHidden         ConfigFlags = 0x00000080 // hidden window
	FlagAlwaysRun      ConfigFlags = 0x00000100 // keep running while minimized or unfocused
	FlagMinimized      ConfigFlags = 0x00000200 // minimized window
	FlagMaximized      ConfigFlags = 0x00000400 // maximized window
	FlagUnfocused      ConfigFlags = 0x00000800 // start without focus
	FlagTopmost        ConfigFlags = 0x00001000 // always on top
	FlagHighDPI        ConfigFlags = 0x00002000 // high-DPI aware framebuffer
	FlagInterlacedHint ConfigFlags = 0x00010000 // interlaced video hint
)

// flagNames lists every flag in ascending bit order with its config name.
var flagNames = []struct {
	flag ConfigFlags
	name string
}{
	{FlagFullscreen, "fullscreen"},
	{FlagResizable, "resizable"},
	{FlagUndecorated, "undecorated"},
	{FlagTransparent, "transparent"},
	{FlagMSAA4x, "msaa_4x"},
	{FlagVsyncHint, "vsync_hint"},
	{FlagHidden, "hidden"},
	{FlagAlwaysRun, "always_run"},
	{FlagMinimized, "minimized"},
	{FlagMaximized, "maximized"},
	{FlagUnfocused, "unfocused"},
	{FlagTopmost, "topmost"},
	{FlagHighDPI, "high_dpi"},
	{FlagInterlacedHint, "interlaced_hint"},
}

// Set returns f with every bit of mask set.
func (f ConfigFlags) Set(mask ConfigFlags) ConfigFlags {
	return f | mask
}

// Clear returns f with every bit of mask cleared.
func (f ConfigFlags) Clear(mask ConfigFlags) ConfigFlags {
	return f &^ mask
}

// Has reports whether every bit of mask is set in f.
func (f ConfigFlags) Has(mask ConfigFlags) bool {
	return f&mask == mask
}

// Names returns the config names of the set flags in ascending bit order.
// Unknown bits are rendered as hex.
func (f ConfigFlags) Names() []string {
	names := make([]string, 0, bits.OnesCount32(uint32(f)))
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return names
}

func (f ConfigFlags) String() string {
	if f == 0 {
		return "none"
	}
	return strings.Join(f.Names(), "|")
}

// ParseConfigFlag maps a config name such as "vsync_hint" or "VSYNC-HINT" to
// its flag.
func ParseConfigFlag(name string) (ConfigFlags, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	norm = strings.ReplaceAll(norm, "-", "_")
	norm = strings.TrimPrefix(norm, "flag_")
	for _, fn := range flagNames {
		if fn.name == norm {
			return fn.flag, nil
		}
	}
	return 0, fmt.Errorf("unknown config flag %q", name)
}

// UnmarshalYAML decodes a sequence of flag names.
func (f *ConfigFlags) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if err := value.Decode(&names); err != nil {
		return fmt.Errorf("config flags: %w", err)
	}
	var out ConfigFlags
	for _, n := range names {
		flag, err := ParseConfigFlag(n)
		if err != nil {
			return fmt.Errorf("config flags line %d: %w", value.Line, err)
		}
		out |= flag
	}
	*f = out
	return nil
}

// MarshalYAML encodes the flags as a sequence of names.
func (f ConfigFlags) MarshalYAML() (any, error) {
	return f.Names(), nil
}
