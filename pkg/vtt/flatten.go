package vtt

import (
	"regexp"
	"strings"
)

// 00:00:01.000 at line start; covers both cue timing lines and bare timestamps
var leadingTimestampPattern = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3}`)

// Flatten strips caption markup and timing from a caption track, producing
// plain dialogue text for summarization: one line per cue, "speaker: text"
// when a speaker tag is present, the raw line otherwise.
//
// This is deliberately a separate single-pass scan rather than a projection of
// Parse: flattening only needs reading text, not structured timestamped
// entries, and keeps the raw form of untagged lines.
func Flatten(content string) string {
	lines := strings.Split(content, "\n")
	textLines := make([]string, 0, len(lines))

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if line == "" || isSkippableLine(line) || leadingTimestampPattern.MatchString(line) {
			continue
		}

		if m := speakerTagPattern.FindStringSubmatch(line); m != nil {
			speaker := strings.TrimSpace(m[1])
			text := strings.TrimSpace(m[2])
			textLines = append(textLines, speaker+": "+text)
			continue
		}

		textLines = append(textLines, line)
	}

	return strings.Join(textLines, "\n")
}
