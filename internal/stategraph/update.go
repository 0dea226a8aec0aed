package stategraph

import (
	"encoding/json"
	"fmt"
)

// Op enumerates the update kinds of the input stream.
type Op int

const (
	// OpAdd adds the directed edge U -> V.
	OpAdd Op = iota
	// OpClose marks U closed.
	OpClose
	// OpLive marks U live (accepting), which also closes it.
	OpLive
)

// Update is one record of an update stream. The wire format is an
// externally tagged object: {"Add":[u,v]}, {"Close":u} or {"Live":u}.
type Update struct {
	Op   Op
	U, V int
}

// AddEdgeUpdate returns the record adding the edge u -> v.
func AddEdgeUpdate(u, v int) Update { return Update{Op: OpAdd, U: u, V: v} }

// CloseUpdate returns the record closing u.
func CloseUpdate(u int) Update { return Update{Op: OpClose, U: u} }

// LiveUpdate returns the record marking u live.
func LiveUpdate(u int) Update { return Update{Op: OpLive, U: u} }

// MarshalJSON renders the externally tagged wire form.
func (u Update) MarshalJSON() ([]byte, error) {
	switch u.Op {
	case OpAdd:
		return json.Marshal(map[string][2]int{"Add": {u.U, u.V}})
	case OpClose:
		return json.Marshal(map[string]int{"Close": u.U})
	case OpLive:
		return json.Marshal(map[string]int{"Live": u.U})
	default:
		return nil, fmt.Errorf("update: invalid op %d", u.Op)
	}
}

// UnmarshalJSON parses the externally tagged wire form. Unrecognized tags
// and malformed payloads are errors.
func (u *Update) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("update: %w", err)
	}
	if len(raw) != 1 {
		return fmt.Errorf("update: expected exactly one tag, got %d", len(raw))
	}
	for tag, payload := range raw {
		switch tag {
		case "Add":
			var pair []int
			if err := json.Unmarshal(payload, &pair); err != nil {
				return fmt.Errorf("update: Add payload: %w", err)
			}
			if len(pair) != 2 {
				return fmt.Errorf("update: Add payload has %d elements, want 2", len(pair))
			}
			*u = Update{Op: OpAdd, U: pair[0], V: pair[1]}
		case "Close":
			var v int
			if err := json.Unmarshal(payload, &v); err != nil {
				return fmt.Errorf("update: Close payload: %w", err)
			}
			*u = Update{Op: OpClose, U: v}
		case "Live":
			var v int
			if err := json.Unmarshal(payload, &v); err != nil {
				return fmt.Errorf("update: Live payload: %w", err)
			}
			*u = Update{Op: OpLive, U: v}
		default:
			return fmt.Errorf("update: unknown tag %q", tag)
		}
	}
	return nil
}

// Touches returns the vertices named by the update.
func (u Update) Touches() []int {
	if u.Op == OpAdd {
		return []int{u.U, u.V}
	}
	return []int{u.U}
}

func (u Update) String() string {
	switch u.Op {
	case OpAdd:
		return fmt.Sprintf("Add(%d,%d)", u.U, u.V)
	case OpClose:
		return fmt.Sprintf("Close(%d)", u.U)
	case OpLive:
		return fmt.Sprintf("Live(%d)", u.U)
	default:
		return "Invalid"
	}
}
