package quiz

// Burst describes one celebratory visual effect.
type Burst struct {
	Particles int     `json:"particle_count"`
	Spread    int     `json:"spread"`
	OriginY   float64 `json:"origin_y"`
}

var (
	CorrectBurst  = Burst{Particles: 50, Spread: 70, OriginY: 0.6}
	PerfectBurst  = Burst{Particles: 150, Spread: 70, OriginY: 0.6}
	NopCelebrator = CelebratorFunc(func(Burst) {})
)

type Celebrator interface {
	Celebrate(b Burst)
}

type CelebratorFunc func(b Burst)

func (f CelebratorFunc) Celebrate(b Burst) { f(b) }
