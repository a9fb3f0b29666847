package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/dhamidi/lx/parser"
)

// TokenTable renders a token stream as a table with running byte offsets.
func TokenTable(w io.Writer, tokens []parser.Token) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Offset", "Kind", "Text"})
	offset := 0
	for i, tok := range tokens {
		t.AppendRow(table.Row{i, offset, tok.Kind.String(), fmt.Sprintf("%q", tok.Text)})
		offset += len(tok.Text)
	}
	t.Render()
}

type tokenJSON struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// EncodeTokensJSON writes a token stream as a JSON array of kind/text pairs.
func EncodeTokensJSON(w io.Writer, tokens []parser.Token) error {
	out := make([]tokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenJSON{Kind: tok.Kind.String(), Text: tok.Text})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
