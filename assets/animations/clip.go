package animations

// Clip is a fixed frame range within a character sprite sheet, stepped by
// elapsed seconds rather than a fixed tick count so playback stays correct
// under a variable frame delta.
type Clip struct {
	First int
	Last  int
	Step  int     // how many sheet indices we move per animation frame
	FPS   float64 // base frames per second at Speed 1.0
	Speed float64 // playback rate multiplier

	Looping  bool
	Finished bool // set once a non-looping clip has shown its last frame

	elapsed float64
	frame   int
}

func New(first, last, step int, fps float64) *Clip {
	if step <= 0 {
		step = 1
	}
	return &Clip{
		First: first,
		Last:  last,
		Step:  step,
		FPS:   fps,
		Speed: 1.0,
		frame: first,
	}
}

// Update advances playback by delta seconds. A finished non-looping clip
// holds its last frame.
func (c *Clip) Update(delta float64) {
	if c.Finished || c.FPS <= 0 {
		return
	}
	c.elapsed += delta * c.Speed
	interval := 1.0 / c.FPS
	for c.elapsed >= interval {
		c.elapsed -= interval
		c.frame += c.Step
		if c.frame > c.Last {
			if c.Looping {
				c.frame = c.First
			} else {
				c.frame = c.Last
				c.Finished = true
				return
			}
		}
	}
}

// Frame returns the current sheet index.
func (c *Clip) Frame() int {
	return c.frame
}

// Restart rewinds the clip to its first frame.
func (c *Clip) Restart() {
	c.frame = c.First
	c.elapsed = 0
	c.Finished = false
}
