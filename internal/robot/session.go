package robot

import (
	"fmt"

	"github.com/google/uuid"
)

// Session is a live robot holding its current pose.
// A Session is not safe for concurrent use.
type Session struct {
	id   string
	name string
	pose Pose
}

// NewSession creates a session at pos facing the orientation letter ch.
func NewSession(name string, pos Position, ch rune) (*Session, error) {
	o, err := ParseOrientation(ch)
	if err != nil {
		return nil, fmt.Errorf("robot %s: %w", name, err)
	}
	return newSession(name, Pose{Position: pos, Orientation: o}), nil
}

func newSession(name string, start Pose) *Session {
	return &Session{
		id:   uuid.Must(uuid.NewV7()).String(),
		name: name,
		pose: start,
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Name() string {
	return s.name
}

// ApplyCommand executes cmd against the current pose. It reports whether the
// robot carried the command out, which is always the case for a simulated
// robot.
func (s *Session) ApplyCommand(cmd Command) bool {
	switch cmd {
	case RotateLeft, RotateRight:
		return s.rotate(cmd)
	case Move:
		return s.move()
	}
	return false
}

func (s *Session) move() bool {
	s.pose = s.pose.Apply(Move)
	return true
}

func (s *Session) rotate(cmd Command) bool {
	s.pose = s.pose.Apply(cmd)
	return true
}

// CurrentPose returns the pose after the last applied command.
func (s *Session) CurrentPose() Pose {
	return s.pose
}

func (s *Session) String() string {
	return fmt.Sprintf("%s at %s", s.name, s.pose)
}
