package uecp

import (
	"github.com/chrko/uecp-go/pkg/charset"
)

// ProgrammeIdentificationSet is MEC 0x01.
type ProgrammeIdentificationSet struct {
	dsnPsn
	PI uint16
}

func NewProgrammeIdentificationSet(pi uint16, dsn, psn byte) ProgrammeIdentificationSet {
	return ProgrammeIdentificationSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, PI: pi}
}

func (c ProgrammeIdentificationSet) Mec() byte { return 0x01 }

func (c ProgrammeIdentificationSet) Encode() []byte {
	return []byte{c.Mec(), c.dsn, c.psn, byte(c.PI >> 8), byte(c.PI & 0xFF)}
}

func decodeProgrammeIdentificationSet(data []byte) (Command, int, error) {
	if len(data) < 5 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 5}
	}
	mec := data[0]
	if mec != 0x01 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x01}
	}
	pi := uint16(data[3])<<8 | uint16(data[4])
	return NewProgrammeIdentificationSet(pi, data[1], data[2]), 5, nil
}

// ProgrammeServiceNameSet is MEC 0x02. Name must encode to at most 8
// RDS characters; it is right-padded with spaces on the wire.
type ProgrammeServiceNameSet struct {
	dsnPsn
	Name string
}

func NewProgrammeServiceNameSet(name string, dsn, psn byte) (ProgrammeServiceNameSet, error) {
	if len([]rune(name)) > 8 {
		return ProgrammeServiceNameSet{}, &InvalidFieldError{Field: "ps", Value: name}
	}
	if _, err := charset.Encode(name); err != nil {
		return ProgrammeServiceNameSet{}, &CharsetError{Err: err}
	}
	return ProgrammeServiceNameSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, Name: name}, nil
}

func (c ProgrammeServiceNameSet) Mec() byte { return 0x02 }

func (c ProgrammeServiceNameSet) Encode() []byte {
	padded, _ := charset.Encode(padRight(c.Name, 8))
	return append([]byte{c.Mec(), c.dsn, c.psn}, padded...)
}

func decodeProgrammeServiceNameSet(data []byte) (Command, int, error) {
	if len(data) < 11 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 11}
	}
	mec := data[0]
	if mec != 0x02 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x02}
	}
	name, err := charset.Decode(data[3:11])
	if err != nil {
		return nil, 0, &CharsetError{Err: err}
	}
	cmd, err := NewProgrammeServiceNameSet(trimTrailingSpaces(name), data[1], data[2])
	if err != nil {
		return nil, 0, err
	}
	return cmd, 11, nil
}

// DecoderInformationSet is MEC 0x04. Artificial-head and compressed
// bits are deprecated and not modelled.
type DecoderInformationSet struct {
	dsnPsn
	Stereo      bool
	DynamicPTY  bool
}

func NewDecoderInformationSet(stereo, dynamicPTY bool, dsn, psn byte) DecoderInformationSet {
	return DecoderInformationSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, Stereo: stereo, DynamicPTY: dynamicPTY}
}

func (c DecoderInformationSet) Mec() byte { return 0x04 }

func (c DecoderInformationSet) Encode() []byte {
	flags := boolByte(c.DynamicPTY)<<3 | boolByte(c.Stereo)
	return []byte{c.Mec(), c.dsn, c.psn, flags}
}

func decodeDecoderInformationSet(data []byte) (Command, int, error) {
	if len(data) < 4 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 4}
	}
	mec := data[0]
	if mec != 0x04 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x04}
	}
	flags := data[3]
	stereo := flags&0b1 != 0
	dynamicPTY := flags&0b1000 != 0
	return NewDecoderInformationSet(stereo, dynamicPTY, data[1], data[2]), 4, nil
}

// TrafficAnnouncementProgrammeSet is MEC 0x03.
type TrafficAnnouncementProgrammeSet struct {
	dsnPsn
	Announcement bool
	Programme    bool
}

func NewTrafficAnnouncementProgrammeSet(announcement, programme bool, dsn, psn byte) TrafficAnnouncementProgrammeSet {
	return TrafficAnnouncementProgrammeSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, Announcement: announcement, Programme: programme}
}

func (c TrafficAnnouncementProgrammeSet) Mec() byte { return 0x03 }

func (c TrafficAnnouncementProgrammeSet) Encode() []byte {
	flags := boolByte(c.Programme)<<1 | boolByte(c.Announcement)
	return []byte{c.Mec(), c.dsn, c.psn, flags}
}

func decodeTrafficAnnouncementProgrammeSet(data []byte) (Command, int, error) {
	if len(data) < 4 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 4}
	}
	mec := data[0]
	if mec != 0x03 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x03}
	}
	flags := data[3]
	announcement := flags&0b1 != 0
	programme := flags&0b10 != 0
	return NewTrafficAnnouncementProgrammeSet(announcement, programme, data[1], data[2]), 4, nil
}

// ProgrammeType enumerates the 32 RDS programme types.
type ProgrammeType byte

const (
	ProgrammeTypeUndefined            ProgrammeType = 0
	ProgrammeTypeNews                 ProgrammeType = 1
	ProgrammeTypeCurrentAffairs       ProgrammeType = 2
	ProgrammeTypeInformation          ProgrammeType = 3
	ProgrammeTypeSport                ProgrammeType = 4
	ProgrammeTypeEducation            ProgrammeType = 5
	ProgrammeTypeDrama                ProgrammeType = 6
	ProgrammeTypeCulture              ProgrammeType = 7
	ProgrammeTypeScience              ProgrammeType = 8
	ProgrammeTypeVaried               ProgrammeType = 9
	ProgrammeTypePopMusic             ProgrammeType = 10
	ProgrammeTypeRockMusic            ProgrammeType = 11
	ProgrammeTypeEasyListeningMusic   ProgrammeType = 12
	ProgrammeTypeLightClassical       ProgrammeType = 13
	ProgrammeTypeSeriousClassical     ProgrammeType = 14
	ProgrammeTypeOtherMusic           ProgrammeType = 15
	ProgrammeTypeWeather              ProgrammeType = 16
	ProgrammeTypeFinance              ProgrammeType = 17
	ProgrammeTypeChildrenProgramme    ProgrammeType = 18
	ProgrammeTypeSocialAffairs        ProgrammeType = 19
	ProgrammeTypeReligion             ProgrammeType = 20
	ProgrammeTypePhoneIn              ProgrammeType = 21
	ProgrammeTypeTravel               ProgrammeType = 22
	ProgrammeTypeLeisure              ProgrammeType = 23
	ProgrammeTypeJazzMusic            ProgrammeType = 24
	ProgrammeTypeCountryMusic         ProgrammeType = 25
	ProgrammeTypeNationalMusic        ProgrammeType = 26
	ProgrammeTypeOldiesMusic          ProgrammeType = 27
	ProgrammeTypeFolkMusic            ProgrammeType = 28
	ProgrammeTypeDocumentary          ProgrammeType = 29
	ProgrammeTypeAlarmTest            ProgrammeType = 30
	ProgrammeTypeAlarm                ProgrammeType = 31
)

// ProgrammeTypeSet is MEC 0x07.
type ProgrammeTypeSet struct {
	dsnPsn
	ProgrammeType ProgrammeType
}

func NewProgrammeTypeSet(pty ProgrammeType, dsn, psn byte) (ProgrammeTypeSet, error) {
	if pty > ProgrammeTypeAlarm {
		return ProgrammeTypeSet{}, &InvalidFieldError{Field: "programme_type", Value: pty}
	}
	return ProgrammeTypeSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, ProgrammeType: pty}, nil
}

func (c ProgrammeTypeSet) Mec() byte { return 0x07 }

func (c ProgrammeTypeSet) Encode() []byte {
	return []byte{c.Mec(), c.dsn, c.psn, byte(c.ProgrammeType)}
}

func decodeProgrammeTypeSet(data []byte) (Command, int, error) {
	if len(data) < 4 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 4}
	}
	mec := data[0]
	if mec != 0x07 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x07}
	}
	cmd, err := NewProgrammeTypeSet(ProgrammeType(data[3]), data[1], data[2])
	if err != nil {
		return nil, 0, err
	}
	return cmd, 4, nil
}

// ProgrammeTypeNameSet is MEC 0x3E, same 8-character padding rule as
// ProgrammeServiceNameSet.
type ProgrammeTypeNameSet struct {
	dsnPsn
	Name string
}

func NewProgrammeTypeNameSet(name string, dsn, psn byte) (ProgrammeTypeNameSet, error) {
	if len([]rune(name)) > 8 {
		return ProgrammeTypeNameSet{}, &InvalidFieldError{Field: "programme_type_name", Value: name}
	}
	if _, err := charset.Encode(name); err != nil {
		return ProgrammeTypeNameSet{}, &CharsetError{Err: err}
	}
	return ProgrammeTypeNameSet{dsnPsn: dsnPsn{dsn: dsn, psn: psn}, Name: name}, nil
}

func (c ProgrammeTypeNameSet) Mec() byte { return 0x3E }

func (c ProgrammeTypeNameSet) Encode() []byte {
	padded, _ := charset.Encode(padRight(c.Name, 8))
	return append([]byte{c.Mec(), c.dsn, c.psn}, padded...)
}

func decodeProgrammeTypeNameSet(data []byte) (Command, int, error) {
	if len(data) < 11 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 11}
	}
	mec := data[0]
	if mec != 0x3E {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x3E}
	}
	name, err := charset.Decode(data[3:11])
	if err != nil {
		return nil, 0, &CharsetError{Err: err}
	}
	cmd, err := NewProgrammeTypeNameSet(trimTrailingSpaces(name), data[1], data[2])
	if err != nil {
		return nil, 0, err
	}
	return cmd, 11, nil
}

func padRight(s string, n int) string {
	for len([]rune(s)) < n {
		s += " "
	}
	return s
}

func trimTrailingSpaces(s string) string {
	end := len(s)
	for end > 0 && s[end-1] == ' ' {
		end--
	}
	return s[:end]
}

func init() {
	register(0x01, "ProgrammeIdentificationSet", true, true, decodeProgrammeIdentificationSet)
	register(0x02, "ProgrammeServiceNameSet", true, true, decodeProgrammeServiceNameSet)
	register(0x04, "DecoderInformationSet", true, true, decodeDecoderInformationSet)
	register(0x03, "TrafficAnnouncementProgrammeSet", true, true, decodeTrafficAnnouncementProgrammeSet)
	register(0x07, "ProgrammeTypeSet", true, true, decodeProgrammeTypeSet)
	register(0x3E, "ProgrammeTypeNameSet", true, true, decodeProgrammeTypeNameSet)
}
