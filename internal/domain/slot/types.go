package slot

type Status string

const (
	StatusOpen    Status = "open"
	StatusClaimed Status = "claimed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusClaimed:
		return true
	default:
		return false
	}
}
