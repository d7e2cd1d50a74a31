package layout

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a plan as indented JSON and writes it to w.
// The encoding is deterministic: identical plans produce identical bytes.
func WriteJSON(p *Plan, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	return nil
}

// ExportJSON writes a plan to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(p *Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}
