package uecp

import "fmt"

// Command is the shared capability every message element implements:
// its MEC and its on-wire encoding starting with that MEC byte.
type Command interface {
	Mec() byte
	Encode() []byte
}

// AddressedCommand is implemented by commands whose layout carries a
// data-set number and a programme-service number. Request (0x17) does
// not consult this interface: it reads the needsDSN/needsPSN flags each
// element records in the MEC registry at registration.
type AddressedCommand interface {
	DataSetNumber() byte
	ProgrammeServiceNumber() byte
}

// DataSetNumber sentinel values, shared across every DSN-carrying
// element.
const (
	CurrentDataSet         byte = 0x00
	AllExceptCurrentDataSet byte = 0xFE
	AllDataSets            byte = 0xFF
)

// dsnPsn is the embeddable mixin every DSN/PSN-carrying command
// composes, mirroring the shared address fields in the catalogue.
type dsnPsn struct {
	dsn byte
	psn byte
}

func (d dsnPsn) DataSetNumber() byte         { return d.dsn }
func (d dsnPsn) ProgrammeServiceNumber() byte { return d.psn }

// decodeFunc parses a command starting at data[0] (the MEC byte),
// returning the command and the number of bytes consumed.
type decodeFunc func(data []byte) (Command, int, error)

// mecEntry is one row of the process-wide MEC registry: the decoder
// function and whether the registered command carries DSN/PSN fields,
// needed by Request (0x17) to shape its nested address bytes.
type mecEntry struct {
	name      string
	decode    decodeFunc
	needsDSN  bool
	needsPSN  bool
}

var registry = map[byte]mecEntry{}

func register(mec byte, name string, needsDSN, needsPSN bool, decode decodeFunc) {
	if mec < 0x01 || mec > 0xFD {
		panic(fmt.Sprintf("uecp: MEC must be in [0x01, 0xFD], got 0x%02X", mec))
	}
	if _, exists := registry[mec]; exists {
		panic(fmt.Sprintf("uecp: MEC 0x%02X already registered", mec))
	}
	registry[mec] = mecEntry{name: name, decode: decode, needsDSN: needsDSN, needsPSN: needsPSN}
}

// RegisteredMecs returns the sorted list of MECs known to the
// catalogue. Exercised by tests asserting the registry has exactly the
// 19 entries the catalogue specifies.
func RegisteredMecs() []byte {
	out := make([]byte, 0, len(registry))
	for mec := range registry {
		out = append(out, mec)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// DecodeSequence iteratively decodes a payload of concatenated command
// elements, stopping when the payload is exhausted. An unknown MEC or
// any per-element decode failure aborts and returns the error along
// with the commands decoded so far.
func DecodeSequence(data []byte) ([]Command, error) {
	var commands []Command
	for len(data) > 0 {
		mec := data[0]
		entry, ok := registry[mec]
		if !ok {
			return commands, &UnknownMecError{Mec: mec}
		}
		cmd, consumed, err := entry.decode(data)
		if err != nil {
			return commands, err
		}
		commands = append(commands, cmd)
		data = data[consumed:]
	}
	return commands, nil
}
