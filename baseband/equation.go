package baseband

import "math"

// boltzmannConstant is k_B, joules/kelvin.
const boltzmannConstant = 1.380649e-23

// defaultTemperatureKelvin is T when a run does not specify one.
const defaultTemperatureKelvin = 290.0

// radarEquationDB computes the radar-equation power budget in dBm,
// excluding the baseband-gain stage (applied separately when
// converting to voltage, step 4.F.g).
func radarEquationDB(txPowerDBm, gTxDB, gRxDB, rcsDBsm, rTx, rRx, lambda, rfGainDB float64) float64 {
	return txPowerDBm + gTxDB + gRxDB -
		10*math.Log10(4*math.Pi*rTx*rTx) + rcsDBsm -
		10*math.Log10(4*math.Pi*rRx*rRx) +
		10*math.Log10(lambda*lambda/(4*math.Pi)) + rfGainDB
}

// signalPeakVoltage converts a power budget in dBm to the peak signal
// voltage at the output of the baseband-gain stage.
func signalPeakVoltage(pDB, loadResistor, basebandGainDB float64) float64 {
	vRMS := math.Sqrt(math.Pow(10, (pDB-30)/10) * loadResistor)
	return math.Sqrt2 * vRMS * math.Pow(10, basebandGainDB/20)
}

// thermalNoiseDBm computes the receiver's noise-floor power budget in
// dBm, including the baseband-gain stage.
func thermalNoiseDBm(noiseBandwidth, rfGainDB, noiseFigureDB, basebandGainDB, temperatureK float64) float64 {
	if temperatureK == 0 {
		temperatureK = defaultTemperatureKelvin
	}
	kTBdBm := 10*math.Log10(boltzmannConstant*temperatureK*1000) + 10*math.Log10(noiseBandwidth)
	return kTBdBm + rfGainDB + noiseFigureDB + basebandGainDB
}

// thermalNoisePeakVoltage converts the noise-floor power budget to the
// peak noise voltage v_peak. The per-component (real/imaginary) standard
// deviation of the complex Gaussian thermal noise is v_peak/sqrt(2).
func thermalNoisePeakVoltage(rxNoiseDBm, loadResistor float64) float64 {
	return math.Sqrt2 * math.Sqrt(math.Pow(10, (rxNoiseDBm-30)/10)*loadResistor)
}
