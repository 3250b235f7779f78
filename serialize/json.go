package serialize

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/killzin666/ozone/store"
)

// WriteJSON serializes s as indented JSON to w.
func WriteJSON(w io.Writer, s *store.ColumnStore) error {
	data, err := WriteStore(s)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("serialize: encoding store JSON: %w", err)
	}
	return nil
}

// ReadJSON deserializes a ColumnStore from r.
func ReadJSON(r io.Reader) (*store.ColumnStore, error) {
	var data StoreData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("serialize: decoding store JSON: %w", err)
	}
	return ReadStore(data)
}
