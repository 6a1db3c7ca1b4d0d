package gcc1101

type Register byte
type Status byte
type Strobe byte

// Crystal oscillator frequency in Hz.
const FXOSC uint64 = 26000000

// Access-mode flags OR'd into a register's base address.
const (
	FlagRead  byte = 0x80
	FlagBurst byte = 0x40
)

// Configuration registers, base addresses 0x00-0x2E.
const (
	RegIOCFG2   Register = 0x00
	RegIOCFG1   Register = 0x01
	RegIOCFG0   Register = 0x02
	RegFIFOTHR  Register = 0x03
	RegSYNC1    Register = 0x04
	RegSYNC0    Register = 0x05
	RegPKTLEN   Register = 0x06
	RegPKTCTRL1 Register = 0x07
	RegPKTCTRL0 Register = 0x08
	RegADDR     Register = 0x09
	RegCHANNR   Register = 0x0a
	RegFSCTRL1  Register = 0x0b
	RegFSCTRL0  Register = 0x0c
	RegFREQ2    Register = 0x0d
	RegFREQ1    Register = 0x0e
	RegFREQ0    Register = 0x0f
	RegMDMCFG4  Register = 0x10
	RegMDMCFG3  Register = 0x11
	RegMDMCFG2  Register = 0x12
	RegMDMCFG1  Register = 0x13
	RegMDMCFG0  Register = 0x14
	RegDEVIATN  Register = 0x15
	RegMCSM2    Register = 0x16
	RegMCSM1    Register = 0x17
	RegMCSM0    Register = 0x18
	RegFOCCFG   Register = 0x19
	RegBSCFG    Register = 0x1a
	RegAGCCTRL2 Register = 0x1b
	RegAGCCTRL1 Register = 0x1c
	RegAGCCTRL0 Register = 0x1d
	RegWOREVT1  Register = 0x1e
	RegWOREVT0  Register = 0x1f
	RegWORCTRL  Register = 0x20
	RegFREND1   Register = 0x21
	RegFREND0   Register = 0x22
	RegFSCAL3   Register = 0x23
	RegFSCAL2   Register = 0x24
	RegFSCAL1   Register = 0x25
	RegFSCAL0   Register = 0x26
	RegRCCTRL1  Register = 0x27
	RegRCCTRL0  Register = 0x28
	RegFSTEST   Register = 0x29
	RegPTEST    Register = 0x2a
	RegAGCTEST  Register = 0x2b
	RegTEST2    Register = 0x2c
	RegTEST1    Register = 0x2d
	RegTEST0    Register = 0x2e
)

// Status registers share base addresses 0x30-0x3D with the strobes and are
// disambiguated on the wire by the burst flag, which is always set for a
// status read and never for a strobe.
const (
	StatusPARTNUM       Status = 0x30
	StatusVERSION       Status = 0x31
	StatusFREQEST       Status = 0x32
	StatusLQI           Status = 0x33
	StatusRSSI          Status = 0x34
	StatusMARCSTATE     Status = 0x35
	StatusWORTIME1      Status = 0x36
	StatusWORTIME0      Status = 0x37
	StatusPKTSTATUS     Status = 0x38
	StatusVCOVCDAC      Status = 0x39
	StatusTXBYTES       Status = 0x3a
	StatusRXBYTES       Status = 0x3b
	StatusRCCTRL1STATUS Status = 0x3c
	StatusRCCTRL0STATUS Status = 0x3d
)

// Command strobes.
const (
	StrobeSRES    Strobe = 0x30 // reset chip
	StrobeSFSTXON Strobe = 0x31
	StrobeSXOFF   Strobe = 0x32
	StrobeSCAL    Strobe = 0x33
	StrobeSRX     Strobe = 0x34 // enable RX
	StrobeSTX     Strobe = 0x35 // enable TX
	StrobeSIDLE   Strobe = 0x36 // exit RX/TX
	StrobeSWOR    Strobe = 0x38
	StrobeSPWD    Strobe = 0x39
	StrobeSFRX    Strobe = 0x3a // flush RX FIFO
	StrobeSFTX    Strobe = 0x3b // flush TX FIFO
	StrobeSWORRST Strobe = 0x3c
	StrobeSNOP    Strobe = 0x3d
)

// FIFO and PA table occupy dedicated addresses; the direction and burst
// flags select among single/burst read/write on the one FIFO address.
const (
	RegPATABLE Register = 0x3e
	RegFIFO    Register = 0x3f
)

// MARCSTATE values for the states the driver steers between.
const (
	MarcStateIdle byte = 0x01
	MarcStateRX   byte = 0x0d
	MarcStateTX   byte = 0x13
)

// MDMCFG2 MOD_FORMAT values.
const (
	ModFormat2FSK byte = 0x00
	ModFormatGFSK byte = 0x01
	ModFormatOOK  byte = 0x03
	ModFormat4FSK byte = 0x04
	ModFormatMSK  byte = 0x07
)

// MDMCFG2 SYNC_MODE values.
const (
	SyncCheckDisabled byte = 0x00
	SyncCheck15of16   byte = 0x01
	SyncCheck16of16   byte = 0x02
	SyncCheck30of32   byte = 0x03
)

// PKTCTRL1 ADR_CHK values.
const (
	AddressCheckDisabled         byte = 0x00
	AddressCheckSelf             byte = 0x01
	AddressCheckSelfLowBroadcast byte = 0x02
	AddressCheckSelfAllBroadcast byte = 0x03
)

// PKTCTRL0 LENGTH_CONFIG values.
const (
	LengthConfigFixed    byte = 0x00
	LengthConfigVariable byte = 0x01
	LengthConfigInfinite byte = 0x02
)

// MCSM0 FS_AUTOCAL values.
const (
	AutoCalNever        byte = 0x00
	AutoCalFromIdle     byte = 0x01
	AutoCalToIdle       byte = 0x02
	AutoCalToIdleEvery4 byte = 0x03
)

// Chip reset values for the registers the driver rebuilds from defaults.
const (
	defSYNC1    byte = 0xd3
	defSYNC0    byte = 0x91
	defPKTLEN   byte = 0xff
	defPKTCTRL1 byte = 0x04
	defPKTCTRL0 byte = 0x45
	defADDR     byte = 0x00
	defFSCTRL1  byte = 0x0f
	defMDMCFG4  byte = 0x8c
	defMDMCFG3  byte = 0x22
	defMDMCFG2  byte = 0x02
	defDEVIATN  byte = 0x47
	defMCSM0    byte = 0x04
	defAGCCTRL2 byte = 0x03
)

// Variable packet mode caps the payload at the 64-byte FIFO minus the
// length prefix and the appended status pair.
const MaxPayloadLength = 61

// readAddr is the on-wire address for a single read of a configuration
// register.
func (r Register) readAddr() byte {
	return byte(r) | FlagRead
}

// writeAddr is the on-wire address for a single write; the write direction
// is the absence of the read flag.
func (r Register) writeAddr() byte {
	return byte(r)
}

func (r Register) burstWriteAddr() byte {
	return byte(r) | FlagBurst
}

func (r Register) burstReadAddr() byte {
	return byte(r) | FlagRead | FlagBurst
}

// readAddr is the on-wire address of a status register; the burst flag is
// what separates a status read from the strobe sharing its base address.
func (s Status) readAddr() byte {
	return byte(s) | FlagRead | FlagBurst
}

func (s Strobe) addr() byte {
	return byte(s)
}
