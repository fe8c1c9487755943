// Package render formats exercise results as human-readable console blocks.
package render

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/kanto/internal/game/state"
)

// Renderer writes one labeled block per exercise result to w.
// It is not safe for concurrent use.
type Renderer struct {
	w     io.Writer
	title cases.Caser
}

// New creates a Renderer writing to w.
//
// Precondition: w must be non-nil.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, title: cases.Title(language.English)}
}

// Result writes "Exercise N result:" followed by v. Scalars and string lists
// stay on the header line; everything else is written below it as YAML.
//
// Postcondition: Returns the first write or encode error, if any.
func (r *Renderer) Result(number int, v any) error {
	header := fmt.Sprintf("Exercise %d result:", number)
	switch val := v.(type) {
	case string:
		_, err := fmt.Fprintf(r.w, "%s %s\n", header, val)
		return err
	case int, bool:
		_, err := fmt.Fprintf(r.w, "%s %v\n", header, val)
		return err
	case []string:
		_, err := fmt.Fprintf(r.w, "%s [%s]\n", header, strings.Join(val, ", "))
		return err
	}

	if _, err := fmt.Fprintln(r.w, header); err != nil {
		return err
	}
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(r.display(v)); err != nil {
		return fmt.Errorf("render: encoding exercise %d: %w", number, err)
	}
	return enc.Close()
}

// display returns v with item names title-cased. Other values pass through.
func (r *Renderer) display(v any) any {
	switch val := v.(type) {
	case []state.Item:
		return r.items(val)
	case state.Snapshot:
		val.Items = r.items(val.Items)
		return val
	}
	return v
}

func (r *Renderer) items(in []state.Item) []state.Item {
	out := make([]state.Item, len(in))
	for i, it := range in {
		out[i] = state.Item{Name: r.title.String(it.Name), Quantity: it.Quantity}
	}
	return out
}
