package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	apperrors "studyhub/internal/platform/errors"
)

// Dump returns every namespaced document keyed by its storage key. The shape
// matches a browser local-storage export of the same keys.
func Dump(ctx context.Context, medium Medium) (map[string]json.RawMessage, error) {
	keys, err := medium.Keys(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		if !namespaced(k) {
			continue
		}
		raw, ok, err := medium.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if ok {
			out[k] = json.RawMessage(raw)
		}
	}
	return out, nil
}

// Restore writes known keys from a dump. Browser exports store each value as
// a JSON string holding the document; both that form and an embedded
// document are accepted. It returns the keys written, sorted.
func Restore(ctx context.Context, medium Medium, dump map[string]json.RawMessage) ([]string, error) {
	written := []string{}
	keys := make([]string, 0, len(dump))
	for k := range dump {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !IsKnown(k) {
			continue
		}
		doc, err := unwrapDocument(dump[k])
		if err != nil {
			return written, fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidInput, k, err)
		}
		if err := medium.Set(ctx, k, doc); err != nil {
			return written, err
		}
		written = append(written, k)
	}
	return written, nil
}

func unwrapDocument(raw json.RawMessage) ([]byte, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if !json.Valid([]byte(s)) {
			return nil, fmt.Errorf("string value is not a json document")
		}
		return []byte(s), nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("value is not json")
	}
	return []byte(raw), nil
}
