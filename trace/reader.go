package trace

import (
	"errors"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// ReadAll decodes every event a Recorder wrote to r, in order. It exists
// for tests and offline tooling, never for the scheduler itself.
func ReadAll(r io.Reader) ([]Event, error) {
	dec := cbor.NewDecoder(r)
	var events []Event
	for {
		var e Event
		if err := dec.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return events, err
		}
		events = append(events, e)
	}
	return events, nil
}
