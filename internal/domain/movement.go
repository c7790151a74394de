package domain

// MoveState is the movement controller state.
type MoveState int

const (
	Idle MoveState = iota
	FollowingPath
	FreeMoving
)

func (s MoveState) String() string {
	switch s {
	case Idle:
		return "idle"
	case FollowingPath:
		return "following-path"
	case FreeMoving:
		return "free-moving"
	default:
		return "unknown"
	}
}

// MarshalText lets the state show up as a string in JSON.
func (s MoveState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
