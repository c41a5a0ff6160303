package models

import "encoding/json"

// State is the lifecycle of a soft-deletable record. The only transition is
// Active -> Deleted; Deleted is terminal.
//
// On the wire it is the boolean "deleted" flag.
type State uint8

const (
	Active State = iota
	Deleted
)

// IsDeleted reports whether the record was soft-deleted.
func (s State) IsDeleted() bool {
	return s == Deleted
}

// Apply returns the state after a requested "deleted" value. A request to
// un-delete is ignored.
func (s State) Apply(deleted bool) State {
	if deleted || s == Deleted {
		return Deleted
	}
	return Active
}

func (s State) String() string {
	if s == Deleted {
		return "deleted"
	}
	return "active"
}

func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s == Deleted)
}

func (s *State) UnmarshalJSON(b []byte) error {
	var deleted bool
	if err := json.Unmarshal(b, &deleted); err != nil {
		return err
	}

	*s = Active.Apply(deleted)
	return nil
}

func (s State) MarshalYAML() (interface{}, error) {
	return s == Deleted, nil
}
