package services

import (
	"encoding/json"
	"strings"
)

// Payload is the outcome of extracting a JSON object from a chat reply.
// Parse failures are not failures of the endpoint: callers return the raw
// text under a "raw_response" key with a degraded message instead.
type Payload struct {
	Data      map[string]any
	Raw       string
	Parsed    bool
	HasMarker bool
}

// ExtractPayload pulls a JSON object out of a chat reply. The model usually
// returns bare JSON but sometimes wraps it in a fenced code block; the first
// complete fence wins. HasMarker is set when the parsed object carries any of
// the given top-level keys, which is how callers distinguish the expected
// shape from arbitrary valid JSON.
func ExtractPayload(text string, markers ...string) Payload {
	candidate := fencedInterior(text)

	var data map[string]any
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return Payload{Raw: text}
	}

	p := Payload{Data: data, Raw: text, Parsed: true}
	for _, marker := range markers {
		if _, ok := data[marker]; ok {
			p.HasMarker = true
			break
		}
	}
	return p
}

// fencedInterior returns the interior of the first complete fenced code
// block, or the whole string when none is present. A plain delimiter scan;
// the info string (for example "json") is discarded with the opening line.
func fencedInterior(text string) string {
	const fence = "```"

	start := strings.Index(text, fence)
	if start < 0 {
		return text
	}

	rest := text[start+len(fence):]
	nl := strings.IndexByte(rest, '\n')
	if nl < 0 {
		return text
	}
	rest = rest[nl+1:]

	end := strings.Index(rest, fence)
	if end < 0 {
		return text
	}

	return strings.TrimSpace(rest[:end])
}
