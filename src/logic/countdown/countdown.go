package countdown

// Countdown is a whole-second timer driven by external ticks.
// Duration 0 never runs.
type Countdown struct {
	Duration int  `json:"duration"`
	Left     int  `json:"left"`
	Running  bool `json:"running"`
}

func New(duration int) *Countdown {
	if duration < 0 {
		duration = 0
	}
	return &Countdown{Duration: duration, Left: duration}
}

// back to full duration, running when enabled
func (c *Countdown) Reset() {
	c.Left = c.Duration
	c.Running = c.Duration > 0
}

func (c *Countdown) Stop() {
	c.Running = false
}

func (c *Countdown) Enabled() bool {
	return c.Duration > 0
}

// Tick decrements once. It returns true only on the tick that reaches zero.
func (c *Countdown) Tick() bool {
	if !c.Running || c.Left <= 0 {
		return false
	}
	c.Left--
	if c.Left == 0 {
		c.Running = false
		return true
	}
	return false
}
