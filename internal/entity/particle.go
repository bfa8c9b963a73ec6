package entity

import "math/rand"

// Particle is one spark of a collision burst.
type Particle struct {
	X, Y   float64
	DX, DY float64
	Life   int
}

// Burst scatters n particles around (x, y).
func Burst(rng *rand.Rand, x, y, n int) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:    float64(x + intn(rng, -BurstSpread, BurstSpread)),
			Y:    float64(y + intn(rng, -BurstSpread, BurstSpread)),
			DX:   uniform(rng, -BurstMaxSpeed, BurstMaxSpeed),
			DY:   uniform(rng, -BurstMaxSpeed, BurstMaxSpeed),
			Life: intn(rng, BurstMinLife, BurstMaxLife),
		}
	}
	return ps
}

func (p *Particle) Tick() {
	p.X += p.DX
	p.Y += p.DY
	p.Life--
}

func (p Particle) Dead() bool { return p.Life <= 0 }

// TickParticles advances every particle and drops the expired ones in place.
func TickParticles(ps []Particle) []Particle {
	alive := ps[:0]
	for i := range ps {
		ps[i].Tick()
		if !ps[i].Dead() {
			alive = append(alive, ps[i])
		}
	}
	clear(ps[len(alive):])
	return alive
}

// Mote is a background particle. Color indexes the neon palette.
type Mote struct {
	X, Y   float64
	DX, DY float64
	Radius int
	Color  int
}

// NewMotes scatters n motes over a w×h screen. paletteSize bounds Color.
func NewMotes(rng *rand.Rand, n, w, h, paletteSize int) []Mote {
	ms := make([]Mote, n)
	for i := range ms {
		ms[i] = Mote{
			X:      float64(intn(rng, 0, w)),
			Y:      float64(intn(rng, 0, h)),
			DX:     uniform(rng, -MoteMaxSpeed, MoteMaxSpeed),
			DY:     uniform(rng, -MoteMaxSpeed, MoteMaxSpeed),
			Radius: intn(rng, MoteMinRadius, MoteMaxRadius),
			Color:  rng.Intn(max(paletteSize, 1)),
		}
	}
	return ms
}

// Drift moves the mote and turns it back once it has left the screen.
func (m *Mote) Drift(w, h int) {
	m.X += m.DX
	m.Y += m.DY
	if m.X < 0 || m.X > float64(w) {
		m.DX = -m.DX
	}
	if m.Y < 0 || m.Y > float64(h) {
		m.DY = -m.DY
	}
}
