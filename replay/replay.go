// Package replay turns short input scripts into a frame-by-frame input source.
//
// A script is a whitespace separated list of steps. Each step is one or more
// action letters followed by an optional frame count:
//
//	L  move left
//	R  move right
//	J  jump
//	N  no input
//
// "R30 RJ1 R20 N10" holds right for 30 frames, jumps while still moving,
// keeps running for 20 more frames and then idles for 10.
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/platformer/sim"
)

var ErrBadScript = errors.New("bad input script")

// Step holds one input for Frames consecutive frames.
type Step struct {
	Input  sim.Input
	Frames int
}

// Script is a parsed sequence of steps. It implements sim.InputSource; once
// exhausted it yields an empty input.
type Script struct {
	steps []Step
	index int
	used  int
}

// Parse builds a Script from its text form.
func Parse(text string) (*Script, error) {
	s := &Script{}
	for _, tok := range strings.Fields(text) {
		step, err := parseStep(tok)
		if err != nil {
			return nil, err
		}
		s.steps = append(s.steps, step)
	}
	return s, nil
}

func parseStep(tok string) (Step, error) {
	var step Step
	i := 0
letters:
	for ; i < len(tok); i++ {
		switch tok[i] {
		case 'L', 'l':
			step.Input.MoveLeft = true
		case 'R', 'r':
			step.Input.MoveRight = true
		case 'J', 'j':
			step.Input.Jump = true
		case 'N', 'n':
		default:
			break letters
		}
	}
	if i == 0 {
		return Step{}, fmt.Errorf("%w: step %q has no action", ErrBadScript, tok)
	}
	step.Frames = 1
	if i < len(tok) {
		n, err := strconv.Atoi(tok[i:])
		if err != nil || n <= 0 {
			return Step{}, fmt.Errorf("%w: step %q has an invalid frame count", ErrBadScript, tok)
		}
		step.Frames = n
	}
	return step, nil
}

// Sample returns the input for the next frame.
func (s *Script) Sample() sim.Input {
	for s.index < len(s.steps) {
		st := s.steps[s.index]
		if s.used < st.Frames {
			s.used++
			return st.Input
		}
		s.index++
		s.used = 0
	}
	return sim.Input{}
}

// Done reports whether every scripted frame has been sampled.
func (s *Script) Done() bool {
	if s.index >= len(s.steps) {
		return true
	}
	return s.index == len(s.steps)-1 && s.used >= s.steps[s.index].Frames
}

// Frames returns the total number of scripted frames.
func (s *Script) Frames() int {
	n := 0
	for _, st := range s.steps {
		n += st.Frames
	}
	return n
}

// Steps returns a copy of the parsed steps.
func (s *Script) Steps() []Step {
	return append([]Step(nil), s.steps...)
}

// Reset rewinds the script to its first frame.
func (s *Script) Reset() {
	s.index = 0
	s.used = 0
}
