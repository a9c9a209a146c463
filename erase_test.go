package vtcore

import (
	"testing"
)

func TestSelectiveEraseLineSkipsProtected(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("AB")
	term.WriteString("\x1b[1\"q") // DECSCA on
	term.WriteString("CD")
	term.WriteString("\x1b[0\"q") // DECSCA off
	term.WriteString("EF")

	// DECSEL: erase entire line selectively
	term.WriteString("\x1b[?2K")

	if term.Cell(0, 0).Char != ' ' || term.Cell(0, 1).Char != ' ' {
		t.Error("expected unprotected cells to be erased")
	}
	if term.Cell(0, 2).Char != 'C' || term.Cell(0, 3).Char != 'D' {
		t.Error("expected protected cells to survive DECSEL")
	}
	if term.Cell(0, 4).Char != ' ' || term.Cell(0, 5).Char != ' ' {
		t.Error("expected trailing unprotected cells to be erased")
	}
}

func TestPlainEraseLineIgnoresProtection(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("\x1b[1\"qCD\x1b[0\"q")

	// EL erases everything, protected or not
	term.WriteString("\x1b[2K")

	if term.Cell(0, 0).Char != ' ' || term.Cell(0, 1).Char != ' ' {
		t.Error("expected plain erase to clear protected cells")
	}
}

func TestSelectiveEraseScreenSkipsProtected(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("plain\r\n")
	term.WriteString("\x1b[1\"qguarded\x1b[0\"q")

	// DECSED: erase entire screen selectively
	term.WriteString("\x1b[?2J")

	if term.LineContent(0) != "" {
		t.Errorf("expected line 0 erased, got %q", term.LineContent(0))
	}
	if term.LineContent(1) != "guarded" {
		t.Errorf("expected protected text to survive DECSED, got %q", term.LineContent(1))
	}
}

func TestEraseCharsIgnoresProtection(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("\x1b[1\"qABCD\x1b[0\"q")
	term.WriteString("\x1b[1;1H") // home
	term.WriteString("\x1b[2X")   // ECH 2

	if term.Cell(0, 0).Char != ' ' || term.Cell(0, 1).Char != ' ' {
		t.Error("expected ECH to erase protected cells")
	}
	if term.Cell(0, 2).Char != 'C' {
		t.Errorf("expected 'C' untouched, got '%c'", term.Cell(0, 2).Char)
	}
	// ECH blanks must not be protected even while DECSCA would be on
	if term.Cell(0, 0).IsProtected() {
		t.Error("expected ECH blanks to be unprotected")
	}
}

func TestInsertedBlanksNeverProtected(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("\x1b[1\"q") // DECSCA on for the pen
	term.WriteString("AB")
	term.WriteString("\x1b[1;1H")
	term.WriteString("\x1b[2@") // ICH 2

	if term.Cell(0, 0).Char != ' ' {
		t.Error("expected blank inserted at cursor")
	}
	if term.Cell(0, 0).IsProtected() {
		t.Error("expected ICH blanks to be unprotected")
	}
	if term.Cell(0, 2).Char != 'A' {
		t.Errorf("expected 'A' shifted right, got '%c'", term.Cell(0, 2).Char)
	}
}

func TestDeleteCharsBlanksNeverProtected(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("\x1b[1\"qABCDEFGHIJ")
	term.WriteString("\x1b[1;1H")
	term.WriteString("\x1b[3P") // DCH 3

	if term.Cell(0, 0).Char != 'D' {
		t.Errorf("expected 'D' shifted left, got '%c'", term.Cell(0, 0).Char)
	}
	if term.Cell(0, 9).IsProtected() {
		t.Error("expected DCH trailing blanks to be unprotected")
	}
}

func TestInsertedLinesInheritPenProtection(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("top\r\nmid")
	term.WriteString("\x1b[1\"q") // DECSCA on
	term.WriteString("\x1b[1;1H")
	term.WriteString("\x1b[1L") // IL 1

	// The fresh blank line carries the pen protection, so a later
	// selective erase leaves it intact as a visual gap.
	if !term.Cell(0, 0).IsProtected() {
		t.Error("expected IL blanks to inherit pen protection")
	}
	if term.LineContent(1) != "top" {
		t.Errorf("expected 'top' shifted down, got %q", term.LineContent(1))
	}
}

func TestDeletedLinesBlanksInheritPenProtection(t *testing.T) {
	term := New(WithSize(3, 10))

	term.WriteString("one\r\ntwo\r\nthree")
	term.WriteString("\x1b[1\"q")
	term.WriteString("\x1b[1;1H")
	term.WriteString("\x1b[1M") // DL 1

	if term.LineContent(0) != "two" {
		t.Errorf("expected 'two' shifted up, got %q", term.LineContent(0))
	}
	if !term.Cell(2, 0).IsProtected() {
		t.Error("expected DL blanks at the bottom to inherit pen protection")
	}
}

func TestEraseFillCarriesBackground(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("Hello")
	term.WriteString("\x1b[44m") // blue background
	term.WriteString("\x1b[2J")

	cell := term.Cell(2, 5)
	indexed, ok := cell.Bg.(*IndexedColor)
	if !ok {
		t.Fatal("expected erase fill to carry the pen background")
	}
	if indexed.Index != 4 {
		t.Errorf("expected blue (4), got %d", indexed.Index)
	}
}

func TestEraseLineFillCarriesBackground(t *testing.T) {
	term := New(WithSize(5, 10))

	term.WriteString("Hello")
	term.WriteString("\x1b[41m\x1b[1;1H\x1b[K")

	cell := term.Cell(0, 7)
	indexed, ok := cell.Bg.(*IndexedColor)
	if !ok {
		t.Fatal("expected EL fill to carry the pen background")
	}
	if indexed.Index != 1 {
		t.Errorf("expected red (1), got %d", indexed.Index)
	}
}

func TestScrollFillCarriesBackground(t *testing.T) {
	term := New(WithSize(3, 10))

	term.WriteString("\x1b[42m") // green background
	term.WriteString("a\nb\nc\n") // scrolls once

	cell := term.Cell(2, 5)
	indexed, ok := cell.Bg.(*IndexedColor)
	if !ok {
		t.Fatal("expected scroll fill to carry the pen background")
	}
	if indexed.Index != 2 {
		t.Errorf("expected green (2), got %d", indexed.Index)
	}
}

func TestSGRResetKeepsProtection(t *testing.T) {
	term := New(WithSize(5, 20))

	term.WriteString("\x1b[1\"q\x1b[1;31m") // protect + bold red
	term.WriteString("\x1b[0m")             // SGR reset
	term.WriteString("X")

	cell := term.Cell(0, 0)
	if cell.HasFlag(CellFlagBold) {
		t.Error("expected SGR 0 to drop bold")
	}
	if !cell.IsProtected() {
		t.Error("expected SGR 0 to preserve DECSCA protection")
	}
}
