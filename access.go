package gcc1101

import "fmt"

// Every helper below is one chip-select-scoped transaction: the SPI port
// asserts CS for the duration of a single Tx and releases it after.

func (r *Radio) readRegister(reg Register) (byte, error) {
	w := []byte{reg.readAddr(), 0x00}
	read := make([]byte, len(w))
	if err := r.SPI.Tx(w, read); err != nil {
		return 0, fmt.Errorf("spi read 0x%02x: %w", byte(reg), err)
	}
	return read[1], nil
}

func (r *Radio) readStatus(reg Status) (byte, error) {
	w := []byte{reg.readAddr(), 0x00}
	read := make([]byte, len(w))
	if err := r.SPI.Tx(w, read); err != nil {
		return 0, fmt.Errorf("spi status read 0x%02x: %w", byte(reg), err)
	}
	return read[1], nil
}

// readFifo drains one variable-mode packet in a single burst: the chip
// clocks out the length byte and the source address ahead of the payload.
func (r *Radio) readFifo(buf []byte) (length, addr byte, err error) {
	w := make([]byte, 3+len(buf))
	w[0] = RegFIFO.burstReadAddr()
	read := make([]byte, len(w))
	if err := r.SPI.Tx(w, read); err != nil {
		return 0, 0, fmt.Errorf("spi fifo read: %w", err)
	}
	copy(buf, read[3:])
	return read[1], read[2], nil
}

func (r *Radio) writeStrobe(s Strobe) error {
	w := []byte{s.addr()}
	if err := r.SPI.Tx(w, make([]byte, len(w))); err != nil {
		return fmt.Errorf("spi strobe 0x%02x: %w", byte(s), err)
	}
	return nil
}

func (r *Radio) writeRegister(reg Register, value byte) error {
	w := []byte{reg.writeAddr(), value}
	if err := r.SPI.Tx(w, make([]byte, len(w))); err != nil {
		return fmt.Errorf("spi write 0x%02x: %w", byte(reg), err)
	}
	return nil
}

func (r *Radio) writeBurst(reg Register, data []byte) error {
	w := append([]byte{reg.burstWriteAddr()}, data...)
	if err := r.SPI.Tx(w, make([]byte, len(w))); err != nil {
		return fmt.Errorf("spi burst write 0x%02x: %w", byte(reg), err)
	}
	return nil
}

// modifyRegister is a read-then-write; it is not atomic with respect to any
// other bus user, the radio owns the bus for the whole driver lifetime.
func (r *Radio) modifyRegister(reg Register, f func(byte) byte) error {
	v, err := r.readRegister(reg)
	if err != nil {
		return err
	}
	return r.writeRegister(reg, f(v))
}
