package vtt

import (
	"strings"
	"testing"
)

func TestFlatten_SpeakerTaggedLines(t *testing.T) {
	input := "WEBVTT\n\n00:00:01.000 --> 00:00:03.000\n<v>Alice:</v>Hello there\n" +
		"00:00:04.000 --> 00:00:05.000\n<v>Bob:</v>Hi Alice\n"

	got := Flatten(input)

	want := "Alice: Hello there\nBob: Hi Alice"
	if got != want {
		t.Fatalf("unexpected output:\n%q", got)
	}
}

func TestFlatten_UntaggedLinesKeptRaw(t *testing.T) {
	input := "00:00:01.000 --> 00:00:02.000\nraw caption text\n"

	got := Flatten(input)

	if got != "raw caption text" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFlatten_DropsTimestampsHeadersAndNotes(t *testing.T) {
	input := "WEBVTT\nNOTE generated\ntranscript: id-1\n00:00:01.000 --> 00:00:02.000\n00:12:59.123\n<v>Alice:</v>only line\n"

	got := Flatten(input)

	if got != "Alice: only line" {
		t.Fatalf("unexpected output %q", got)
	}
	if strings.Contains(got, "-->") || strings.Contains(got, "WEBVTT") {
		t.Fatalf("markup leaked into output: %q", got)
	}
}

func TestFlatten_EveryLineComesFromOneSourceCue(t *testing.T) {
	input := "00:00:01.000 --> 00:00:02.000\n<v>A:</v>one\n" +
		"00:00:03.000 --> 00:00:04.000\n<v>B:</v>two\n" +
		"00:00:05.000 --> 00:00:06.000\nthree\n"

	got := strings.Split(Flatten(input), "\n")

	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d: %v", len(got), got)
	}
}

func TestFlatten_EmptyInput(t *testing.T) {
	if Flatten("") != "" {
		t.Fatalf("expected empty output for empty input")
	}
}
