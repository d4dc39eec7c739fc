package uecp

// RDSEnable is MEC 0x1E.
type RDSEnable struct {
	Enable bool
}

func (c RDSEnable) Mec() byte { return 0x1E }

func (c RDSEnable) Encode() []byte {
	return []byte{c.Mec(), boolByte(c.Enable)}
}

func decodeRDSEnable(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec := data[0]
	if mec != 0x1E {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x1E}
	}
	enable := data[1]
	if enable != 0x00 && enable != 0x01 {
		return nil, 0, &InvalidFieldError{Field: "enable", Value: enable}
	}
	return RDSEnable{Enable: enable == 0x01}, 2, nil
}

// RDSPhase is MEC 0x22. DeciDegrees is tenths of a degree, 0..3599.
type RDSPhase struct {
	ReferenceTable byte
	DeciDegrees    uint16
}

func NewRDSPhase(referenceTable byte, deciDegrees uint16) (RDSPhase, error) {
	if referenceTable > 0b111 {
		return RDSPhase{}, &InvalidFieldError{Field: "reference_table", Value: referenceTable}
	}
	if deciDegrees > 3599 {
		return RDSPhase{}, &InvalidFieldError{Field: "deci_degrees", Value: deciDegrees}
	}
	return RDSPhase{ReferenceTable: referenceTable, DeciDegrees: deciDegrees}, nil
}

func (c RDSPhase) Mec() byte { return 0x22 }

func (c RDSPhase) Encode() []byte {
	return []byte{
		c.Mec(),
		c.ReferenceTable<<5 | byte(c.DeciDegrees>>8),
		byte(c.DeciDegrees & 0xFF),
	}
}

func decodeRDSPhase(data []byte) (Command, int, error) {
	if len(data) < 3 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 3}
	}
	mec := data[0]
	if mec != 0x22 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x22}
	}
	referenceTable := (data[1] & (0b111 << 5)) >> 5
	deciDegrees := uint16(data[1]&0b1111)<<8 | uint16(data[2])
	if deciDegrees > 3599 {
		return nil, 0, &InvalidFieldError{Field: "deci_degrees", Value: deciDegrees}
	}
	return RDSPhase{ReferenceTable: referenceTable, DeciDegrees: deciDegrees}, 3, nil
}

// RDSLevel is MEC 0x0E. Level is 0..8191.
type RDSLevel struct {
	ReferenceTable byte
	Level          uint16
}

func NewRDSLevel(referenceTable byte, level uint16) (RDSLevel, error) {
	if referenceTable > 0b111 {
		return RDSLevel{}, &InvalidFieldError{Field: "reference_table", Value: referenceTable}
	}
	if level > 8191 {
		return RDSLevel{}, &InvalidFieldError{Field: "level", Value: level}
	}
	return RDSLevel{ReferenceTable: referenceTable, Level: level}, nil
}

func (c RDSLevel) Mec() byte { return 0x0E }

func (c RDSLevel) Encode() []byte {
	return []byte{
		c.Mec(),
		c.ReferenceTable<<5 | byte(c.Level>>8),
		byte(c.Level & 0xFF),
	}
}

func decodeRDSLevel(data []byte) (Command, int, error) {
	if len(data) < 3 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 3}
	}
	mec := data[0]
	if mec != 0x0E {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x0E}
	}
	referenceTable := (data[1] & 0b1110_0000) >> 5
	level := uint16(data[1]&0b11111)<<8 | uint16(data[2])
	if level > 8191 {
		return nil, 0, &InvalidFieldError{Field: "level", Value: level}
	}
	return RDSLevel{ReferenceTable: referenceTable, Level: level}, 3, nil
}

func init() {
	register(0x1E, "RDSEnable", false, false, decodeRDSEnable)
	register(0x22, "RDSPhase", false, false, decodeRDSPhase)
	register(0x0E, "RDSLevel", false, false, decodeRDSLevel)
}
