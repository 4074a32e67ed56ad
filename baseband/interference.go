package baseband

import "github.com/openthread/radarsim/raderr"

// SynthesizeInterference runs the same synthesis as Synthesize but for
// a hybrid radar assembled from the interferer's transmitter/geometry/
// pose and the primary receiver's channels, then mixes the result
// additively into primary (component H). hybrid must share primary's
// cube shape: same N_f, N_ch, N_p, N_s; otherwise a ShapeMismatch error
// is returned and primary is left unchanged.
func SynthesizeInterference(primary *Cube, hybrid Config) error {
	interference, err := Synthesize(hybrid)
	if err != nil {
		return err
	}
	if interference.NRows != primary.NRows || interference.NPulses != primary.NPulses || interference.NSamples != primary.NSamples {
		return raderr.New(raderr.ShapeMismatch, "interference cube shape (%d,%d,%d) != primary (%d,%d,%d)",
			interference.NRows, interference.NPulses, interference.NSamples, primary.NRows, primary.NPulses, primary.NSamples)
	}
	primary.AddCube(interference)
	return nil
}
