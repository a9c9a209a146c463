package ansi

import (
	"encoding/base64"
	"strconv"
	"strings"
)

func (d *Decoder) oscDispatch(cmd *Command) {
	h := d.handler
	parts := strings.Split(string(cmd.Payload), ";")
	if len(parts) == 0 || parts[0] == "" {
		return
	}

	num, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	args := parts[1:]

	switch num {
	case 0, 2:
		h.SetTitle(strings.Join(args, ";"))

	case 4:
		// Pairs of palette index and color spec.
		for i := 0; i+1 < len(args); i += 2 {
			index, err := strconv.Atoi(args[i])
			if err != nil || index < 0 || index > 255 {
				continue
			}
			if c, ok := parseColorSpec(args[i+1]); ok {
				h.SetColor(index, c.R, c.G, c.B)
			}
		}

	case 7:
		if len(args) > 0 {
			h.SetWorkingDirectory(strings.Join(args, ";"))
		}

	case 8:
		if len(args) < 2 {
			return
		}
		uri := strings.Join(args[1:], ";")
		if uri == "" {
			h.SetHyperlink(nil)
			return
		}
		link := &Hyperlink{URI: uri}
		for _, p := range strings.Split(args[0], ":") {
			if id, ok := strings.CutPrefix(p, "id="); ok {
				link.ID = id
			}
		}
		h.SetHyperlink(link)

	case 10, 11, 12:
		// Dynamic colors apply to consecutive indices when multiple
		// arguments are given; only queries are answered.
		for i, arg := range args {
			if arg == "?" {
				h.SetDynamicColor(strconv.Itoa(num+i), int(NamedColorForeground)+(num-10)+i, cmd.Terminator)
			}
		}

	case 52:
		if len(args) < 2 {
			return
		}
		clipboard := byte('c')
		if args[0] != "" {
			clipboard = args[0][0]
		}
		if args[1] == "?" {
			h.ClipboardLoad(clipboard, cmd.Terminator)
			return
		}
		if data, err := base64.StdEncoding.DecodeString(args[1]); err == nil {
			h.ClipboardStore(clipboard, data)
		}

	case 104:
		if len(args) == 0 {
			for i := 0; i < 256; i++ {
				h.ResetColor(i)
			}
			return
		}
		for _, arg := range args {
			if index, err := strconv.Atoi(arg); err == nil && index >= 0 && index <= 255 {
				h.ResetColor(index)
			}
		}
	}
}

// parseColorSpec understands the XParseColor forms emitters actually use:
// "rgb:RR/GG/BB" with 1 to 4 hex digits per channel, and "#RRGGBB".
func parseColorSpec(s string) (RGBColor, bool) {
	if hex, ok := strings.CutPrefix(s, "rgb:"); ok {
		chans := strings.Split(hex, "/")
		if len(chans) != 3 {
			return RGBColor{}, false
		}
		var out [3]uint8
		for i, c := range chans {
			if len(c) < 1 || len(c) > 4 {
				return RGBColor{}, false
			}
			v, err := strconv.ParseUint(c, 16, 16)
			if err != nil {
				return RGBColor{}, false
			}
			// Scale to 8 bits from however many digits were given.
			bits := 4 * len(c)
			if bits >= 8 {
				out[i] = uint8(v >> (bits - 8))
			} else {
				out[i] = uint8(v<<(8-bits) | v)
			}
		}
		return RGBColor{R: out[0], G: out[1], B: out[2]}, true
	}

	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGBColor{}, false
		}
		return RGBColor{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, true
	}

	return RGBColor{}, false
}
