package baseband

import "github.com/openthread/radarsim/kinematics"

// Reflection is the per-channel, per-sample pair the ray-tracer
// boundary supplies in injected-reflection mode: a complex reflection
// coefficient and an apparent phase (radians) that together replace
// the analytic radar-equation amplitude of step 4.F.f.
type Reflection struct {
	Coefficient complex128
	PhaseRad    float64
}

// ReflectionSource is the ray-tracer injection point. It is consulted
// once per (virtual channel, pulse, sample, target); ok=false falls
// back to the analytic point-target radar equation. The core never
// constructs a ReflectionSource itself — it is supplied externally,
// consistent with ray-tracing being an opaque collaborator.
type ReflectionSource func(frame, ch, pulseIdx, sampleIdx, targetIdx int) (r Reflection, ok bool)

// Scene is the set of targets (and optional injected-reflection
// source) the synthesizer accumulates over.
type Scene struct {
	Targets    []*kinematics.Target
	Reflection ReflectionSource
}
