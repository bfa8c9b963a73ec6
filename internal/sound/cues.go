package sound

// Cues holds the rendered one-shot sounds and hands them to a player.
// A nil *Cues is silent.
type Cues struct {
	play  func(pcm []byte)
	score []byte
	crash []byte
}

// NewCues renders the cues once. play is called with the PCM of each cue
// as it fires.
func NewCues(play func(pcm []byte)) *Cues {
	return &Cues{play: play, score: Score(), crash: Crash()}
}

func (c *Cues) Score() {
	if c == nil {
		return
	}
	c.emit(c.score)
}

func (c *Cues) Crash() {
	if c == nil {
		return
	}
	c.emit(c.crash)
}

func (c *Cues) emit(pcm []byte) {
	if c.play == nil || len(pcm) == 0 {
		return
	}
	c.play(pcm)
}
