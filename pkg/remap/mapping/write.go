package mapping

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"
)

// Format selects the helper output layout.
type Format string

const (
	// FormatYAML writes a File consumable by Load.
	FormatYAML Format = "yaml"
	// FormatLiteral writes the copy-paste pair list of the old text_to_py.txt.
	FormatLiteral Format = "literal"
)

// ParseFormat validates a format name. An empty name selects FormatYAML.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, "":
		return FormatYAML, nil
	case FormatLiteral:
		return FormatLiteral, nil
	}
	return "", fmt.Errorf("invalid format: %s (must be yaml or literal)", s)
}

// Write writes pairs in the given format.
func Write(w io.Writer, pairs []models.Pair, format Format) error {
	format, err := ParseFormat(string(format))
	if err != nil {
		return err
	}
	if format == FormatLiteral {
		return WriteLiteral(w, pairs)
	}
	return WriteYAML(w, pairs)
}

// WriteYAML writes pairs as a YAML mapping file.
func WriteYAML(w io.Writer, pairs []models.Pair) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(File{Pairs: pairs}); err != nil {
		return err
	}
	return enc.Close()
}

// WriteLiteral writes pairs as a bracketed list of ('old','new') tuples,
// one per line, each followed by a comma.
func WriteLiteral(w io.Writer, pairs []models.Pair) error {
	var b strings.Builder
	b.WriteString("[\n")
	for _, p := range pairs {
		fmt.Fprintf(&b, "('%s','%s'),\n", p.From, p.To)
	}
	out := b.String()
	_, err := io.WriteString(w, out[:len(out)-1]+"\n]")
	return err
}
