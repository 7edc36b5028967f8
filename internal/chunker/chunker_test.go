package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/custodia-labs/docqa-cli/internal/core/domain"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		s := New()
		if s.size != DefaultSize {
			t.Errorf("expected size %d, got %d", DefaultSize, s.size)
		}
		if s.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, s.overlap)
		}
	})

	t.Run("custom size and overlap", func(t *testing.T) {
		s := New(WithSize(200), WithOverlap(20))
		if s.size != 200 || s.overlap != 20 {
			t.Errorf("expected 200/20, got %d/%d", s.size, s.overlap)
		}
	})

	t.Run("overlap exceeds size", func(t *testing.T) {
		s := New(WithSize(100), WithOverlap(150))
		if s.overlap >= s.size {
			t.Error("overlap should be reduced when it exceeds size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		s := New(WithSize(0), WithOverlap(-1))
		if s.size != DefaultSize || s.overlap != DefaultOverlap {
			t.Errorf("expected defaults, got %d/%d", s.size, s.overlap)
		}
	})
}

func TestRender(t *testing.T) {
	r := domain.Record{Title: "Speed Limit", Description: "Maximum speed in urban areas is 50 km/h."}
	got := Render(r)
	want := "Title: Speed Limit\n\nSection Content:\nMaximum speed in urban areas is 50 km/h."
	if got != want {
		t.Errorf("rendered text mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestSplit_EmptyDescription(t *testing.T) {
	s := New()
	chunks := s.Split(domain.Record{Index: 3, Title: "Definitions"})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if !strings.Contains(chunks[0].Text, "Title: Definitions") {
		t.Errorf("chunk should contain the title line, got %q", chunks[0].Text)
	}
	if chunks[0].ID != "3_0" {
		t.Errorf("expected id 3_0, got %s", chunks[0].ID)
	}
}

func TestSplit_SizeBound(t *testing.T) {
	s := New(WithSize(120), WithOverlap(20))
	record := domain.Record{
		Index:       0,
		Title:       "Penalties",
		Description: strings.Repeat("Whoever drives a motor vehicle in contravention of the provisions shall be punishable. ", 30),
	}

	chunks := s.Split(record)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if n := utf8.RuneCountInString(c.Text); n > 120 {
			t.Errorf("chunk %s exceeds size bound: %d runes", c.ID, n)
		}
	}
}

func TestSplit_Reconstruction(t *testing.T) {
	s := New(WithSize(80), WithOverlap(15))
	record := domain.Record{
		Index: 7,
		Title: "Registration",
		Description: "No person shall drive any motor vehicle unless the vehicle is registered.\n\n" +
			"The registering authority shall issue a certificate of registration. " +
			"An application for registration shall be made within seven days. " +
			"Temporary registration may be granted pending completion.",
	}

	chunks := s.Split(record)
	var rebuilt strings.Builder
	for i, c := range chunks {
		runes := []rune(c.Text)
		if i == 0 {
			rebuilt.WriteString(c.Text)
			continue
		}
		rebuilt.WriteString(string(runes[15:]))
	}

	if rebuilt.String() != Render(record) {
		t.Errorf("removing overlaps did not reconstruct the rendered record:\ngot  %q\nwant %q",
			rebuilt.String(), Render(record))
	}
}

func TestSplit_PrefersCoarseSeparators(t *testing.T) {
	s := New(WithSize(60), WithOverlap(10))
	record := domain.Record{
		Index:       0,
		Title:       "Chapters",
		Description: "First paragraph of the section.\n\nSecond paragraph follows here with more words filling space.",
	}

	chunks := s.Split(record)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// The first cut should land on a paragraph break, not mid-word.
	if !strings.HasSuffix(chunks[0].Text, "\n\n") {
		t.Errorf("expected first chunk to end at a paragraph break, got %q", chunks[0].Text)
	}
}

func TestSplit_DeterministicIDs(t *testing.T) {
	s := New(WithSize(90), WithOverlap(10))
	record := domain.Record{
		Index:       12,
		Title:       "Licensing",
		Description: strings.Repeat("A licence is required to drive. ", 20),
	}

	first := s.Split(record)
	second := s.Split(record)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("chunk %d id differs: %s vs %s", i, first[i].ID, second[i].ID)
		}
		if first[i].Text != second[i].Text {
			t.Errorf("chunk %d text differs", i)
		}
	}
}

func TestSplit_Metadata(t *testing.T) {
	s := New(WithSource("motor_vehicles_act"))
	chunks := s.Split(domain.Record{Index: 5, Title: "Insurance", Description: "Third party insurance is mandatory."})

	for _, c := range chunks {
		if c.Metadata.Title != "Insurance" {
			t.Errorf("expected metadata title Insurance, got %q", c.Metadata.Title)
		}
		if c.Metadata.RowIndex != 5 {
			t.Errorf("expected row index 5, got %d", c.Metadata.RowIndex)
		}
		if c.Metadata.Source != "motor_vehicles_act" {
			t.Errorf("expected source tag, got %q", c.Metadata.Source)
		}
	}
}
