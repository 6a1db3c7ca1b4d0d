package gcc1101

// Datasheet fixed-point encodings for the physical radio parameters. All
// conversions are pure integer math, rounding to the nearest representable
// encoding with ties going to the larger encoded value.

// divRound divides rounding to nearest, ties up.
func divRound(num, den uint64) uint64 {
	return (num + den/2) / den
}

// fromFrequency encodes a carrier frequency in Hz into the 24-bit FREQ
// word, returned as its low, mid and high register bytes.
// FREQ = hz * 2^16 / FXOSC
func fromFrequency(hz uint64) (freq0, freq1, freq2 byte) {
	f := divRound(hz<<16, FXOSC)
	return byte(f), byte(f >> 8), byte(f >> 16)
}

// toFrequency decodes the 24-bit FREQ word back to Hz.
func toFrequency(freq0, freq1, freq2 byte) uint64 {
	f := uint64(freq2)<<16 | uint64(freq1)<<8 | uint64(freq0)
	return (f*FXOSC + (1 << 15)) >> 16
}

// fromDrate encodes a data rate in baud.
// baud = (256 + m) * 2^e * FXOSC / 2^28, m in [0,255], e in [0,15].
// Raising the exponent doubles the reachable range, so the smallest
// exponent whose mantissa fits keeps the step size, and the error, minimal.
func fromDrate(baud uint64) (mantissa, exponent byte) {
	for e := uint64(0); e <= 15; e++ {
		m := divRound(baud<<28, FXOSC<<e)
		if m < 256 {
			// below the encodable floor for this exponent
			return 0, byte(e)
		}
		if m <= 511 {
			return byte(m - 256), byte(e)
		}
	}
	return 255, 15
}

// toDrate decodes a (mantissa, exponent) pair back to baud.
func toDrate(mantissa, exponent byte) uint64 {
	return ((256+uint64(mantissa))<<exponent*FXOSC + (1 << 27)) >> 28
}

// fromDeviation encodes an FSK deviation in Hz.
// dev = (8 + m) * 2^e * FXOSC / 2^17, m in [0,7], e in [0,7].
func fromDeviation(hz uint64) (mantissa, exponent byte) {
	for e := uint64(0); e <= 7; e++ {
		m := divRound(hz<<17, FXOSC<<e)
		if m < 8 {
			return 0, byte(e)
		}
		if m <= 15 {
			return byte(m - 8), byte(e)
		}
	}
	return 7, 7
}

// toDeviation decodes a (mantissa, exponent) pair back to Hz.
func toDeviation(mantissa, exponent byte) uint64 {
	return ((8+uint64(mantissa))<<exponent*FXOSC + (1 << 16)) >> 17
}

// fromChanbw encodes a channel filter bandwidth in Hz.
// bw = FXOSC / (8 * (4 + m) * 2^e), m in [0,3], e in [0,3].
// Picks the narrowest setting still covering the request so the demodulator
// keeps its expected margin; requests outside the encodable range clamp to
// the nearest end.
func fromChanbw(hz uint64) (mantissa, exponent byte) {
	for e := 3; e >= 0; e-- {
		for m := 3; m >= 0; m-- {
			if toChanbw(byte(m), byte(e)) >= hz {
				return byte(m), byte(e)
			}
		}
	}
	return 0, 0
}

// toChanbw decodes a (mantissa, exponent) pair back to Hz.
func toChanbw(mantissa, exponent byte) uint64 {
	den := 8 * (4 + uint64(mantissa)) << exponent
	return divRound(FXOSC, den)
}
