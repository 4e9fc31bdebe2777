package gate

type EntryType string

const (
	TypeEntry EntryType = "entry"
	TypeExit  EntryType = "exit"
)

func (t EntryType) String() string {
	return string(t)
}

func (t EntryType) IsValid() bool {
	switch t {
	case TypeEntry, TypeExit:
		return true
	default:
		return false
	}
}

// ParseEntryType rejects unrecognized values at the boundary.
func ParseEntryType(v string) (EntryType, error) {
	t := EntryType(v)
	if !t.IsValid() {
		return "", ErrInvalidEntryType
	}
	return t, nil
}
