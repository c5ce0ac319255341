package render

import (
	"fmt"
	"html/template"
	"math"
	"strconv"
)

// Particle is one decorative floating dot. Positions are percentages of
// the container, times are seconds.
type Particle struct {
	Left     int
	Top      int
	Delay    float64
	Duration int
}

// Style is the inline CSS placing the particle.
func (p Particle) Style() template.CSS {
	return template.CSS(fmt.Sprintf("left:%d%%;top:%d%%;animation-delay:%ss;animation-duration:%ds",
		p.Left, p.Top, strconv.FormatFloat(p.Delay, 'f', -1, 64), p.Duration))
}

// Particles lays out count dots deterministically so every render and
// every export produce the same page.
func Particles(count int, delayStep, delayMod float64, baseDuration, durationMod int) []Particle {
	out := make([]Particle, count)
	for i := range out {
		delay := math.Mod(float64(i)*delayStep, delayMod)
		out[i] = Particle{
			Left:     (i*7 + 10) % 90,
			Top:      (i*11 + 15) % 85,
			Delay:    math.Round(delay*100) / 100,
			Duration: baseDuration + i%durationMod,
		}
	}
	return out
}

// SplashParticles are the dots of the welcome screen.
func SplashParticles() []Particle { return Particles(30, 0.2, 3, 2, 3) }

// BackgroundParticles are the dots behind the page.
func BackgroundParticles() []Particle { return Particles(20, 0.3, 5, 3, 4) }
