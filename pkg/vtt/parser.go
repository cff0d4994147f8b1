package vtt

import (
	"regexp"
	"strings"
)

// Entry is a single speaker-attributed caption cue extracted from a WebVTT-like
// caption track. Entries keep the source order, which is chronological.
type Entry struct {
	Timestamp string `json:"timestamp"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}

// UnknownSpeaker is used when a cue carries text but no speaker tag
const UnknownSpeaker = "Unknown"

var (
	// <v>Alice:</v>Hello there
	speakerTagPattern = regexp.MustCompile(`<v>([^<]+):</v>(.*)`)
	// <v Alice>Hello there
	speakerAttrPattern = regexp.MustCompile(`<v\s+([^<>]+)>(.*)`)
)

// Parse scans caption-track text into ordered entries. It is a pure function:
// the same input always yields the same sequence.
//
// A timing line ("start --> end") sets the pending timestamp and clears the
// accumulated speaker/text. Speaker-tagged lines fill speaker and text; the
// entry is emitted once timestamp, speaker and text are all present. A plain
// text line under a pending timestamp is emitted immediately as its own entry
// with the speaker defaulting to "Unknown"; multi-line plain cues therefore
// produce one entry per physical line. Downstream search and export rely on
// that behavior, so it must not be collapsed into per-cue accumulation.
func Parse(content string) []Entry {
	entries := []Entry{}

	var timestamp, speaker, text string

	// Emission resets the speaker/text accumulator but keeps the pending
	// timestamp: later lines of the same cue emit under the same timing.
	emit := func() {
		entries = append(entries, Entry{
			Timestamp: timestamp,
			Speaker:   speaker,
			Text:      text,
		})
		speaker, text = "", ""
	}

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" || isSkippableLine(line) {
			continue
		}

		if idx := strings.Index(line, "-->"); idx != -1 {
			timestamp = strings.TrimSpace(line[:idx])
			speaker = ""
			text = ""
			continue
		}

		if m := speakerTagPattern.FindStringSubmatch(line); m != nil {
			speaker = strings.TrimSpace(m[1])
			text = strings.TrimSpace(m[2])
			if timestamp != "" && speaker != "" && text != "" {
				emit()
			}
			continue
		}

		if m := speakerAttrPattern.FindStringSubmatch(line); m != nil {
			speaker = strings.TrimSpace(m[1])
			text = strings.TrimSpace(m[2])
			if timestamp != "" && speaker != "" && text != "" {
				emit()
			}
			continue
		}

		// Plain continuation text under a pending timestamp
		if timestamp != "" {
			if speaker == "" {
				speaker = UnknownSpeaker
			}
			if text == "" {
				text = line
			} else {
				text = text + " " + line
			}
			emit()
		}
	}

	// A dangling partial accumulator at end of input is dropped.
	return entries
}

// isSkippableLine reports whether the line is header or metadata that never
// contributes to an entry.
func isSkippableLine(line string) bool {
	return strings.HasPrefix(line, "WEBVTT") ||
		strings.HasPrefix(line, "NOTE") ||
		strings.HasPrefix(line, "transcript:")
}
