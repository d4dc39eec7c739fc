// Package charset implements the RDS Basic Character Set codec used by
// PS, RT and PTYN message elements: a strict bijection between a
// single byte in 0x20..0xFE and a Unicode code point.
package charset

import (
	"fmt"
)

// byteToRune is the authoritative decode table: RDS byte -> Unicode code
// point. 0x7F and 0xFF are explicitly undefined, as is 0xDE (absent from
// the canonical mapping this package reproduces).
var byteToRune = map[byte]rune{
	0x20: 0x0020, 0x21: 0x0021, 0x22: 0x0022, 0x23: 0x0023, 0x24: 0x00A4,
	0x25: 0x0025, 0x26: 0x0026, 0x27: 0x0027, 0x28: 0x0028, 0x29: 0x0029,
	0x2A: 0x002A, 0x2B: 0x002B, 0x2C: 0x002C, 0x2D: 0x002D, 0x2E: 0x002E,
	0x2F: 0x002F, 0x30: 0x0030, 0x31: 0x0031, 0x32: 0x0032, 0x33: 0x0033,
	0x34: 0x0034, 0x35: 0x0035, 0x36: 0x0036, 0x37: 0x0037, 0x38: 0x0038,
	0x39: 0x0039, 0x3A: 0x003A, 0x3B: 0x003B, 0x3C: 0x003C, 0x3D: 0x003D,
	0x3E: 0x003E, 0x3F: 0x003F, 0x40: 0x0040, 0x41: 0x0041, 0x42: 0x0042,
	0x43: 0x0043, 0x44: 0x0044, 0x45: 0x0045, 0x46: 0x0046, 0x47: 0x0047,
	0x48: 0x0048, 0x49: 0x0049, 0x4A: 0x004A, 0x4B: 0x004B, 0x4C: 0x004C,
	0x4D: 0x004D, 0x4E: 0x004E, 0x4F: 0x004F, 0x50: 0x0050, 0x51: 0x0051,
	0x52: 0x0052, 0x53: 0x0053, 0x54: 0x0054, 0x55: 0x0055, 0x56: 0x0056,
	0x57: 0x0057, 0x58: 0x0058, 0x59: 0x0059, 0x5A: 0x005A, 0x5B: 0x005B,
	0x5C: 0x005C, 0x5D: 0x005D, 0x5E: 0x2015, 0x5F: 0x005F, 0x60: 0x2551,
	0x61: 0x0061, 0x62: 0x0062, 0x63: 0x0063, 0x64: 0x0064, 0x65: 0x0065,
	0x66: 0x0066, 0x67: 0x0067, 0x68: 0x0068, 0x69: 0x0069, 0x6A: 0x006A,
	0x6B: 0x006B, 0x6C: 0x006C, 0x6D: 0x006D, 0x6E: 0x006E, 0x6F: 0x006F,
	0x70: 0x0070, 0x71: 0x0071, 0x72: 0x0072, 0x73: 0x0073, 0x74: 0x0074,
	0x75: 0x0075, 0x76: 0x0076, 0x77: 0x0077, 0x78: 0x0078, 0x79: 0x0079,
	0x7A: 0x007A, 0x7B: 0x007B, 0x7C: 0x007C, 0x7D: 0x007D, 0x7E: 0x00AF,
	0x80: 0x00E1, 0x81: 0x00E0, 0x82: 0x00E9, 0x83: 0x00E8, 0x84: 0x00ED,
	0x85: 0x00EC, 0x86: 0x00F3, 0x87: 0x00F2, 0x88: 0x00FA, 0x89: 0x00F9,
	0x8A: 0x00D1, 0x8B: 0x00C7, 0x8C: 0x015E, 0x8D: 0x00DF, 0x8E: 0x00A1,
	0x8F: 0x0132, 0x90: 0x00E2, 0x91: 0x00E4, 0x92: 0x00EA, 0x93: 0x00EB,
	0x94: 0x00EE, 0x95: 0x00EF, 0x96: 0x00F4, 0x97: 0x00F6, 0x98: 0x00FB,
	0x99: 0x00FC, 0x9A: 0x00F1, 0x9B: 0x00E7, 0x9C: 0x015F, 0x9D: 0x011F,
	0x9E: 0x0131, 0x9F: 0x0133, 0xA0: 0x00AA, 0xA1: 0x03B1, 0xA2: 0x00A9,
	0xA3: 0x2030, 0xA4: 0x011E, 0xA5: 0x011B, 0xA6: 0x0148, 0xA7: 0x0151,
	0xA8: 0x03C0, 0xA9: 0x20AC, 0xAA: 0x00A3, 0xAB: 0x0024, 0xAC: 0x2190,
	0xAD: 0x2191, 0xAE: 0x2192, 0xAF: 0x2193, 0xB0: 0x00BA, 0xB1: 0x00B9,
	0xB2: 0x00B2, 0xB3: 0x00B3, 0xB4: 0x00B1, 0xB5: 0x0130, 0xB6: 0x0144,
	0xB7: 0x0171, 0xB8: 0x00B5, 0xB9: 0x00BF, 0xBA: 0x00F7, 0xBB: 0x00B0,
	0xBC: 0x00BC, 0xBD: 0x00BD, 0xBE: 0x00BE, 0xBF: 0x00A7, 0xC0: 0x00C1,
	0xC1: 0x00C0, 0xC2: 0x00C9, 0xC3: 0x00C8, 0xC4: 0x00CD, 0xC5: 0x00CC,
	0xC6: 0x00D3, 0xC7: 0x00D2, 0xC8: 0x00DA, 0xC9: 0x00D9, 0xCA: 0x0158,
	0xCB: 0x010C, 0xCC: 0x0160, 0xCD: 0x017D, 0xCE: 0x00D0, 0xCF: 0x013F,
	0xD0: 0x00C2, 0xD1: 0x00C4, 0xD2: 0x00CA, 0xD3: 0x00CB, 0xD4: 0x00CE,
	0xD5: 0x00CF, 0xD6: 0x00D4, 0xD7: 0x00D6, 0xD8: 0x00DB, 0xD9: 0x00DC,
	0xDA: 0x0159, 0xDB: 0x010D, 0xDC: 0x0161, 0xDD: 0x017E, 0xDF: 0x0140,
	0xE0: 0x00C3, 0xE1: 0x00C5, 0xE2: 0x00C6, 0xE3: 0x0152, 0xE4: 0x0177,
	0xE5: 0x00DD, 0xE6: 0x00D5, 0xE7: 0x00D8, 0xE8: 0x00DE, 0xE9: 0x014A,
	0xEA: 0x0154, 0xEB: 0x0106, 0xEC: 0x015A, 0xED: 0x0179, 0xEE: 0x0166,
	0xEF: 0x00F0, 0xF0: 0x00E3, 0xF1: 0x00E5, 0xF2: 0x00E6, 0xF3: 0x0153,
	0xF4: 0x0175, 0xF5: 0x00FD, 0xF6: 0x00F5, 0xF7: 0x00F8, 0xF8: 0x00FE,
	0xF9: 0x014B, 0xFA: 0x0155, 0xFB: 0x0107, 0xFC: 0x015B, 0xFD: 0x017A,
	0xFE: 0x0167,
}

var runeToByte map[rune]byte

func init() {
	runeToByte = make(map[rune]byte, len(byteToRune))
	for b, r := range byteToRune {
		if other, ok := runeToByte[r]; ok {
			panic(fmt.Sprintf("rune %U already mapped to byte 0x%02X", r, other))
		}
		runeToByte[r] = b
	}
}

// Error reports a scalar or byte that has no counterpart in the RDS
// basic character set.
type Error struct {
	Rune      rune
	Byte      byte
	IsDecode  bool
	ByteKnown bool
}

func (e *Error) Error() string {
	if e.IsDecode {
		return fmt.Sprintf("charset: cannot decode byte 0x%02X", e.Byte)
	}
	return fmt.Sprintf("charset: cannot encode code point %U", e.Rune)
}

// Encode maps every rune of s to its RDS byte. It fails on the first
// scalar absent from the table.
func Encode(s string) ([]byte, error) {
	out, _, err := encode(s, true)
	return out, err
}

// EncodeIgnore maps every encodable rune of s to its RDS byte, skipping
// scalars absent from the table, and reports how many scalars were
// encoded.
func EncodeIgnore(s string) ([]byte, int) {
	out, n, _ := encode(s, false)
	return out, n
}

func encode(s string, strict bool) ([]byte, int, error) {
	out := make([]byte, 0, len(s))
	n := 0
	for _, r := range s {
		b, ok := runeToByte[r]
		if !ok {
			if strict {
				return nil, n, &Error{Rune: r}
			}
			continue
		}
		out = append(out, b)
		n++
	}
	return out, n, nil
}

// Decode maps every byte of data to its Unicode scalar. It fails on the
// first byte absent from the table.
func Decode(data []byte) (string, error) {
	s, _, err := decode(data, true)
	return s, err
}

// DecodeIgnore maps every decodable byte of data to its Unicode scalar,
// skipping bytes absent from the table, and reports how many bytes were
// decoded.
func DecodeIgnore(data []byte) (string, int) {
	s, n, _ := decode(data, false)
	return s, n
}

func decode(data []byte, strict bool) (string, int, error) {
	out := make([]rune, 0, len(data))
	n := 0
	for _, b := range data {
		r, ok := byteToRune[b]
		if !ok {
			if strict {
				return "", n, &Error{Byte: b, IsDecode: true, ByteKnown: true}
			}
			continue
		}
		out = append(out, r)
		n++
	}
	return string(out), n, nil
}

// Defined reports whether b has a defined mapping.
func Defined(b byte) bool {
	_, ok := byteToRune[b]
	return ok
}
