package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sgr(params []uint16, colon []bool) []TerminalCharAttribute {
	if colon == nil {
		colon = make([]bool, len(params))
	}
	return parseSGR(params, colon)
}

func TestSGREmptyIsReset(t *testing.T) {
	assert.Equal(t,
		[]TerminalCharAttribute{{Attr: CharAttributeReset}},
		sgr(nil, nil))
}

func TestSGRBasicAttributes(t *testing.T) {
	got := sgr([]uint16{1, 3, 4, 7, 9}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeBold},
		{Attr: CharAttributeItalic},
		{Attr: CharAttributeUnderline},
		{Attr: CharAttributeReverse},
		{Attr: CharAttributeStrike},
	}, got)
}

func TestSGRCancellations(t *testing.T) {
	got := sgr([]uint16{21, 22, 23, 24, 25, 27, 28, 29}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeCancelBold},
		{Attr: CharAttributeCancelBoldDim},
		{Attr: CharAttributeCancelItalic},
		{Attr: CharAttributeCancelUnderline},
		{Attr: CharAttributeCancelBlink},
		{Attr: CharAttributeCancelReverse},
		{Attr: CharAttributeCancelHidden},
		{Attr: CharAttributeCancelStrike},
	}, got)
}

func TestSGRBasicColors(t *testing.T) {
	got := sgr([]uint16{31, 42, 39, 49}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeForeground, Color: IndexedColor(1)},
		{Attr: CharAttributeBackground, Color: IndexedColor(2)},
		{Attr: CharAttributeForegroundDefault},
		{Attr: CharAttributeBackgroundDefault},
	}, got)
}

func TestSGRBrightColors(t *testing.T) {
	got := sgr([]uint16{91, 103}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeForeground, Color: IndexedColor(9)},
		{Attr: CharAttributeBackground, Color: IndexedColor(11)},
	}, got)
}

func TestSGR256Color(t *testing.T) {
	got := sgr([]uint16{38, 5, 196, 48, 5, 17}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeForeground, Color: IndexedColor(196)},
		{Attr: CharAttributeBackground, Color: IndexedColor(17)},
	}, got)
}

func TestSGRTrueColor(t *testing.T) {
	got := sgr([]uint16{38, 2, 255, 128, 0}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeForeground, Color: RGBColor{R: 255, G: 128, B: 0}},
	}, got)
}

func TestSGRUnderlineColor(t *testing.T) {
	got := sgr([]uint16{58, 2, 1, 2, 3, 59}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeUnderlineColor, Color: RGBColor{R: 1, G: 2, B: 3}},
		{Attr: CharAttributeUnderlineColorDefault},
	}, got)
}

func TestSGRUnderlineSubStyles(t *testing.T) {
	// 4:3 selects a curly underline; 4;3 is underline then italic.
	got := sgr([]uint16{4, 3}, []bool{true, false})
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeCurlyUnderline},
	}, got)

	got = sgr([]uint16{4, 3}, []bool{false, false})
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeUnderline},
		{Attr: CharAttributeItalic},
	}, got)
}

func TestSGRTruncatedExtendedColorStops(t *testing.T) {
	got := sgr([]uint16{1, 38, 2, 255}, nil)
	assert.Equal(t, []TerminalCharAttribute{{Attr: CharAttributeBold}}, got)
}

func TestSGROutOfRangeChannelStops(t *testing.T) {
	got := sgr([]uint16{38, 2, 300, 0, 0}, nil)
	assert.Empty(t, got)
}

func TestSGRMixedSequence(t *testing.T) {
	got := sgr([]uint16{0, 1, 31, 48, 5, 240}, nil)
	assert.Equal(t, []TerminalCharAttribute{
		{Attr: CharAttributeReset},
		{Attr: CharAttributeBold},
		{Attr: CharAttributeForeground, Color: IndexedColor(1)},
		{Attr: CharAttributeBackground, Color: IndexedColor(240)},
	}, got)
}
