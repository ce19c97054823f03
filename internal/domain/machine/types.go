package machine

import "errors"

var (
	ErrEmptyName             = errors.New("machine name cannot be empty")
	ErrEmptyCode             = errors.New("machine code cannot be empty")
	ErrEmptyCategory         = errors.New("machine category cannot be empty")
	ErrNegativePrice         = errors.New("price per hour cannot be negative")
	ErrInvalidInstanceStatus = errors.New("invalid instance status")
	ErrEmptyInstanceCode     = errors.New("instance code cannot be empty")
)

// InstanceStatus tracks a physical unit. Only active instances count toward
// availability.
type InstanceStatus string

const (
	InstanceActive      InstanceStatus = "active"
	InstanceMaintenance InstanceStatus = "maintenance"
	InstanceRetired     InstanceStatus = "retired"
)

func (s InstanceStatus) String() string {
	return string(s)
}

func (s InstanceStatus) IsValid() bool {
	switch s {
	case InstanceActive, InstanceMaintenance, InstanceRetired:
		return true
	default:
		return false
	}
}
