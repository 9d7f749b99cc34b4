package extraction

import (
	"encoding/json"
	"fmt"
	"io"
)

// Options controls how records are rendered.
type Options struct {
	// Pretty indents the array with two spaces per level.
	Pretty bool
}

// DefaultOptions returns pretty-printed output.
func DefaultOptions() Options {
	return Options{Pretty: true}
}

// Serialize renders records as a JSON array in their given order.
// A nil or empty slice renders as "[]".
func Serialize(records []Record, opts Options) (string, error) {
	if records == nil {
		records = []Record{}
	}

	var (
		data []byte
		err  error
	)
	if opts.Pretty {
		data, err = json.MarshalIndent(records, "", "  ")
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal records: %w", err)
	}

	return string(data), nil
}

// Encode writes the serialized records to w followed by a newline.
func Encode(w io.Writer, records []Record, opts Options) error {
	out, err := Serialize(records, opts)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
