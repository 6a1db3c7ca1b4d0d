package gcc1101

// rssiOffset is the datasheet offset for the 868/915 MHz bands.
const rssiOffset = 74

// rssiToDbm converts the raw RSSI status byte to dBm. The register holds a
// two's-complement-like value: readings at or above the midpoint wrap to
// the negative half of the scale, half-dB steps either side.
func rssiToDbm(raw byte) int16 {
	if raw >= 128 {
		return (int16(raw)-256)/2 - rssiOffset
	}
	return int16(raw)/2 - rssiOffset
}

// lqiCrcOK reports the CRC-ok flag carried in the top bit of the LQI
// status byte.
func lqiCrcOK(raw byte) bool {
	return raw&0x80 != 0
}

// lqiQuality strips the CRC flag and returns the 7-bit quality score.
// Lower values indicate a better link.
func lqiQuality(raw byte) byte {
	return raw & 0x7f
}
