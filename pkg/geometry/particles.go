package geometry

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-scene-builder/pkg/config"
	"github.com/df07/go-scene-builder/pkg/core"
)

// Particles scatters small icospheres uniformly inside the cube
// [-bound, bound]^3. The toggle wins: when particles are disabled no shape is
// produced, whatever the configured count.
func Particles(cfg config.AtmosphereConfig, random *rand.Rand, material string) []Shape {
	if !cfg.Particles || cfg.ParticleCount == 0 {
		return nil
	}

	uniform := func() float64 {
		return -cfg.ParticleBound + 2*cfg.ParticleBound*random.Float64()
	}

	particles := make([]Shape, 0, cfg.ParticleCount)
	for i := 0; i < cfg.ParticleCount; i++ {
		particles = append(particles, Shape{
			Name:      fmt.Sprintf("Particle.%03d", i),
			Kind:      KindIcosphere,
			Role:      RoleParticle,
			Transform: At(core.NewVec3(uniform(), uniform(), uniform())),
			Radius:    cfg.ParticleRadius,
			Subdivide: 2,
			Material:  material,
		})
	}
	return particles
}
