// Package matcher finds rows holding mapped plan codes and builds their duplicates.
package matcher

import "fmt"

// BackslashMode selects how a backslash-led code is rewritten.
type BackslashMode string

const (
	// BackslashLegacy collapses a backslash-led match to a single backslash,
	// discarding the mapped code. Output matches the legacy macro workbooks.
	BackslashLegacy BackslashMode = "legacy"
	// BackslashKeep keeps the backslash prefix in front of the mapped code.
	BackslashKeep BackslashMode = "keep"
)

// ParseBackslashMode validates a mode name. An empty name selects BackslashLegacy.
func ParseBackslashMode(s string) (BackslashMode, error) {
	switch BackslashMode(s) {
	case "", BackslashLegacy:
		return BackslashLegacy, nil
	case BackslashKeep:
		return BackslashKeep, nil
	}
	return "", fmt.Errorf("invalid backslash mode: %s (must be legacy or keep)", s)
}

// Quoted is a cell value split into its code and the quoting artifacts around it.
type Quoted struct {
	// Core is the value with artifacts removed.
	Core string
	// Lead is the stripped leading `"` or `\`, or "".
	Lead string
	// Trail is the stripped trailing `"` or `\`, or "".
	Trail string
}

func isArtifact(b byte) bool {
	return b == '"' || b == '\\'
}

// Clean strips at most one leading and one trailing quote or backslash.
func Clean(s string) Quoted {
	var q Quoted
	if len(s) > 0 && isArtifact(s[0]) {
		q.Lead = s[:1]
		s = s[1:]
	}
	if len(s) > 0 && isArtifact(s[len(s)-1]) {
		q.Trail = s[len(s)-1:]
		s = s[:len(s)-1]
	}
	q.Core = s
	return q
}

// Render re-applies the quoting convention of q around code.
func Render(q Quoted, code string, mode BackslashMode) string {
	if q.Lead == `\` {
		if mode == BackslashKeep {
			return q.Lead + code + q.Trail
		}
		return `\`
	}
	return q.Lead + code + q.Trail
}
