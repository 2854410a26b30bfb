package sim

// Input is the per-frame intent sampled from the host. States are polled,
// not queued: a jump held across frames is re-armed only by landing.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
}

// InputSource yields one Input per simulation step.
type InputSource interface {
	Sample() Input
}

// InputFunc adapts a plain function to InputSource.
type InputFunc func() Input

func (f InputFunc) Sample() Input { return f() }
