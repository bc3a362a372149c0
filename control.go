package bloop

import "fmt"

type (
	// Control is a change applied to a subtree by Modify.
	Control interface {
		fmt.Stringer
		control()
	}

	// Tempo plays the subtree Factor times faster: 2 halves its duration,
	// 0.5 doubles it.
	Tempo float64

	// Transpose shifts the pitch of the subtree by a number of semitones.
	// Samplers expose no pitch parameter, so Modify rejects it with
	// ErrUnsupportedControl.
	Transpose float64
)

func (t Tempo) String() string     { return fmt.Sprintf("Tempo(%g)", float64(t)) }
func (t Transpose) String() string { return fmt.Sprintf("Transpose(%g)", float64(t)) }

func (Tempo) control()     {}
func (Transpose) control() {}
