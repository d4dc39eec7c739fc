package uecp

// ResponseCode enumerates the Ack/Nack result codes, EBU Tech 3244
// table 8.
type ResponseCode byte

const (
	ResponseOK                     ResponseCode = 0
	ResponseCrcError               ResponseCode = 1
	ResponseMsgNotReceived         ResponseCode = 2
	ResponseMsgUnknown             ResponseCode = 3
	ResponseDsnError               ResponseCode = 4
	ResponsePsnError               ResponseCode = 5
	ResponseParamOutOfRange        ResponseCode = 6
	ResponseMsgElementLengthError  ResponseCode = 7
	ResponseMsgFieldLengthError    ResponseCode = 8
	ResponseMsgNotAcceptable       ResponseCode = 9
	ResponseEndMsgMissing          ResponseCode = 10
	ResponseBufferOverflow         ResponseCode = 11
	ResponseBadStuffing            ResponseCode = 12
	ResponseUnexpectedEndOfMsg     ResponseCode = 13
)

// Acknowledgement is MEC 0x18. SequenceCounter is only meaningful, and
// only encoded, when Code is not ResponseOK.
type Acknowledgement struct {
	Code            ResponseCode
	SequenceCounter byte
}

func (c Acknowledgement) Mec() byte { return 0x18 }

func (c Acknowledgement) Encode() []byte {
	if c.Code != ResponseOK {
		return []byte{c.Mec(), byte(c.Code), c.SequenceCounter}
	}
	return []byte{c.Mec(), 0}
}

func decodeAcknowledgement(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec := data[0]
	if mec != 0x18 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x18}
	}
	code := ResponseCode(data[1])
	if code > ResponseUnexpectedEndOfMsg {
		return nil, 0, &InvalidFieldError{Field: "code", Value: data[1]}
	}
	if code == ResponseOK {
		return Acknowledgement{Code: code}, 2, nil
	}
	if len(data) < 3 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 3}
	}
	return Acknowledgement{Code: code, SequenceCounter: data[2]}, 3, nil
}

// Request is MEC 0x17: asks the encoder to report its current value for
// the named target element. DataSetNumber/ProgrammeServiceNumber are
// present only when the target element's catalogue entry needs them.
type Request struct {
	ElementCode            byte
	DataSetNumber          *byte
	ProgrammeServiceNumber *byte
	AdditionalData         []byte
}

func (c Request) Mec() byte { return 0x17 }

func (c Request) Encode() []byte {
	requestData := []byte{c.ElementCode}
	if c.DataSetNumber != nil {
		requestData = append(requestData, *c.DataSetNumber)
	}
	if c.ProgrammeServiceNumber != nil {
		requestData = append(requestData, *c.ProgrammeServiceNumber)
	}
	requestData = append(requestData, c.AdditionalData...)
	return append([]byte{c.Mec(), byte(len(requestData))}, requestData...)
}

// NewRequest validates elementCode is known and that dsn/psn are
// supplied exactly when the target element's catalogue entry requires
// them.
func NewRequest(elementCode byte, dsn, psn *byte, additionalData []byte) (Request, error) {
	entry, ok := registry[elementCode]
	if !ok {
		return Request{}, &InvalidFieldError{Field: "element_code", Value: elementCode}
	}
	if entry.needsDSN && dsn == nil {
		return Request{}, &InvalidFieldError{Field: "data_set_number", Value: nil}
	}
	if entry.needsPSN && psn == nil {
		return Request{}, &InvalidFieldError{Field: "programme_service_number", Value: nil}
	}
	if !entry.needsDSN && dsn != nil {
		return Request{}, &InvalidFieldError{Field: "data_set_number", Value: *dsn}
	}
	if !entry.needsPSN && psn != nil {
		return Request{}, &InvalidFieldError{Field: "programme_service_number", Value: *psn}
	}
	return Request{ElementCode: elementCode, DataSetNumber: dsn, ProgrammeServiceNumber: psn, AdditionalData: additionalData}, nil
}

func decodeRequest(data []byte) (Command, int, error) {
	if len(data) < 2 {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2}
	}
	mec, mel := data[0], data[1]
	if mec != 0x17 {
		return nil, 0, &MecMismatchError{Got: mec, Expected: 0x17}
	}
	if len(data) < 2+int(mel) {
		return nil, 0, &NotEnoughDataError{Have: len(data), Need: 2 + int(mel)}
	}
	body := data[2 : 2+int(mel)]
	if len(body) < 1 {
		return nil, 0, &NotEnoughDataError{Have: len(body), Need: 1}
	}
	idx := 0
	elementCode := body[idx]
	idx++
	entry, ok := registry[elementCode]
	if !ok {
		return nil, 0, &UnknownMecError{Mec: elementCode}
	}

	var dsn, psn *byte
	if entry.needsDSN {
		if len(body) < idx+1 {
			return nil, 0, &NotEnoughDataError{Have: len(body), Need: idx + 1}
		}
		v := body[idx]
		dsn = &v
		idx++
	}
	if entry.needsPSN {
		if len(body) < idx+1 {
			return nil, 0, &NotEnoughDataError{Have: len(body), Need: idx + 1}
		}
		v := body[idx]
		psn = &v
		idx++
	}
	additional := append([]byte(nil), body[idx:int(mel)]...)

	return Request{
		ElementCode:            elementCode,
		DataSetNumber:          dsn,
		ProgrammeServiceNumber: psn,
		AdditionalData:         additional,
	}, 2 + int(mel), nil
}

func init() {
	register(0x18, "Acknowledgement", false, false, decodeAcknowledgement)
	register(0x17, "Request", false, false, decodeRequest)
}
