package uecp

// AddressMode is the mode byte shared by the site- and encoder-address
// set commands.
type AddressMode byte

const (
	AddressModeRemoveSingle AddressMode = 0b00
	AddressModeAddSingle    AddressMode = 0b01
	AddressModeRemoveAll    AddressMode = 0b10
)

// SiteAddressSet is MEC 0x23.
type SiteAddressSet struct {
	Mode    AddressMode
	Address uint16
}

func NewSiteAddressSet(mode AddressMode, address uint16) (SiteAddressSet, error) {
	if address > 0x3FF {
		return SiteAddressSet{}, &InvalidFieldError{Field: "site_address", Value: address}
	}
	return SiteAddressSet{Mode: mode, Address: address}, nil
}

func (c SiteAddressSet) Mec() byte { return 0x23 }

func (c SiteAddressSet) Encode() []byte {
	return []byte{c.Mec(), byte(c.Mode), byte(c.Address >> 8), byte(c.Address & 0xFF)}
}

func decodeSiteAddressSet(data []byte) (Command, int, error) {
	if len(data) < 4 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 4}
	}
	mec := data[0]
	if mec != 0x23 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x23}
	}
	address := uint16(data[2])<<8 | uint16(data[3])
	if address > 0x3FF {
		return nil, 0, &InvalidFieldError{Field: "site_address", Value: address}
	}
	return SiteAddressSet{Mode: AddressMode(data[1]), Address: address}, 4, nil
}

// EncoderAddressSet is MEC 0x27.
type EncoderAddressSet struct {
	Mode    AddressMode
	Address byte
}

func NewEncoderAddressSet(mode AddressMode, address byte) (EncoderAddressSet, error) {
	if address > 0x3F {
		return EncoderAddressSet{}, &InvalidFieldError{Field: "encoder_address", Value: address}
	}
	return EncoderAddressSet{Mode: mode, Address: address}, nil
}

func (c EncoderAddressSet) Mec() byte { return 0x27 }

func (c EncoderAddressSet) Encode() []byte {
	return []byte{c.Mec(), byte(c.Mode), c.Address}
}

func decodeEncoderAddressSet(data []byte) (Command, int, error) {
	if len(data) < 3 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 3}
	}
	mec := data[0]
	if mec != 0x27 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x27}
	}
	address := data[2]
	if address > 0x3F {
		return nil, 0, &InvalidFieldError{Field: "encoder_address", Value: address}
	}
	return EncoderAddressSet{Mode: AddressMode(data[1]), Address: address}, 3, nil
}

// CommsMode is the communication direction used between controller and
// encoder, carried by CommsModeSet.
type CommsMode byte

const (
	CommsModeUnidirectional               CommsMode = 0
	CommsModeBidirectionalRequestResponse CommsMode = 1
	CommsModeBidirectionalSpontaneous     CommsMode = 2
)

// CommsModeSet is MEC 0x2C.
type CommsModeSet struct {
	Mode CommsMode
}

func NewCommsModeSet(mode CommsMode) (CommsModeSet, error) {
	if mode > CommsModeBidirectionalSpontaneous {
		return CommsModeSet{}, &InvalidFieldError{Field: "mode", Value: byte(mode)}
	}
	return CommsModeSet{Mode: mode}, nil
}

func (c CommsModeSet) Mec() byte { return 0x2C }

func (c CommsModeSet) Encode() []byte {
	return []byte{c.Mec(), byte(c.Mode)}
}

func decodeCommsModeSet(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec := data[0]
	if mec != 0x2C {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x2C}
	}
	mode := data[1]
	if mode > 2 {
		return nil, 0, &InvalidFieldError{Field: "mode", Value: mode}
	}
	return CommsModeSet{Mode: CommsMode(mode)}, 2, nil
}

// DataSetSelect is MEC 0x1C.
type DataSetSelect struct {
	DataSetNumber byte
}

func NewDataSetSelect(dataSetNumber byte) (DataSetSelect, error) {
	if dataSetNumber < 0x01 {
		return DataSetSelect{}, &InvalidFieldError{Field: "select_data_set_number", Value: dataSetNumber}
	}
	return DataSetSelect{DataSetNumber: dataSetNumber}, nil
}

func (c DataSetSelect) Mec() byte { return 0x1C }

func (c DataSetSelect) Encode() []byte {
	return []byte{c.Mec(), c.DataSetNumber}
}

func decodeDataSetSelect(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec := data[0]
	if mec != 0x1C {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x1C}
	}
	dsn := data[1]
	if dsn < 0x01 {
		return nil, 0, &InvalidFieldError{Field: "select_data_set_number", Value: dsn}
	}
	return DataSetSelect{DataSetNumber: dsn}, 2, nil
}

func init() {
	register(0x23, "SiteAddressSet", false, false, decodeSiteAddressSet)
	register(0x27, "EncoderAddressSet", false, false, decodeEncoderAddressSet)
	register(0x2C, "CommsModeSet", false, false, decodeCommsModeSet)
	register(0x1C, "DataSetSelect", false, false, decodeDataSetSelect)
}
