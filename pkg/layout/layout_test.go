package layout

import (
	"reflect"
	"strings"
	"testing"
)

func TestRowsRoundTrip(t *testing.T) {
	// Tokens placed left to right on one line must reconstruct to exactly the
	// joined row string.
	tokens := []string{"2024.01.01", "구매", "퀀텀", "Si(US74765K1051)", "1,434.90", "3"}
	var frags []Fragment
	for i, tok := range tokens {
		frags = append(frags, Fragment{Text: tok, X: float64(10 + i*40), Y: 700})
	}

	lines := Rows(frags)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 row, got %d", len(lines))
	}
	if want := strings.Join(tokens, " "); lines[0] != want {
		t.Errorf("Expected row %q, got %q", want, lines[0])
	}
}

func TestRowsGroupsByVerticalTolerance(t *testing.T) {
	frags := []Fragment{
		{Text: "a", X: 10, Y: 700},
		{Text: "b", X: 50, Y: 698.5}, // within tolerance of 700
		{Text: "c", X: 10, Y: 690},   // separate row
	}

	lines := Rows(frags)
	expected := []string{"a b", "c"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestRowsRebuildsReadingOrder(t *testing.T) {
	// Fragment order in the input is deliberately scrambled; rows must come
	// out top to bottom and fragments left to right.
	frags := []Fragment{
		{Text: "bottom-right", X: 100, Y: 100},
		{Text: "top-right", X: 100, Y: 700},
		{Text: "bottom-left", X: 10, Y: 100},
		{Text: "top-left", X: 10, Y: 700},
	}

	lines := Rows(frags)
	expected := []string{"top-left top-right", "bottom-left bottom-right"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestRowsSameYKeepFirstOpenedOrder(t *testing.T) {
	// A fragment landing exactly on an open row's seed y joins that row
	// rather than opening a same-y sibling, so grouped rows never tie in the
	// top-to-bottom sort; within the line, x decides and the row keeps the
	// identity of whichever fragment opened it first.
	frags := []Fragment{
		{Text: "first", X: 50, Y: 700},
		{Text: "second", X: 10, Y: 700},  // same y as the open row's seed
		{Text: "third", X: 30, Y: 702.5}, // still within tolerance of 700
		{Text: "below", X: 10, Y: 690},
	}

	lines := Rows(frags)
	expected := []string{"second third first", "below"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestRowsDiscardsBlankFragments(t *testing.T) {
	frags := []Fragment{
		{Text: "  ", X: 5, Y: 700},
		{Text: "", X: 15, Y: 700},
		{Text: "kept", X: 25, Y: 700},
	}

	lines := Rows(frags)
	if len(lines) != 1 || lines[0] != "kept" {
		t.Errorf("Expected [kept], got %v", lines)
	}
}

func TestDocumentRowsKeepsPageOrder(t *testing.T) {
	pages := [][]Fragment{
		{{Text: "page1", X: 10, Y: 700}},
		{{Text: "page2", X: 10, Y: 700}},
	}

	lines := DocumentRows(pages)
	expected := []string{"page1", "page2"}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("Expected %v, got %v", expected, lines)
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("  2024.01.01   입금  1,000,000 ")
	expected := []string{"2024.01.01", "입금", "1,000,000"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Expected %v, got %v", expected, tokens)
	}
}
