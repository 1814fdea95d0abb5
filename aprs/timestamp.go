package aprs

import "fmt"

// TimestampVariant identifies one of the four APRS timestamp encodings.
type TimestampVariant int

const (
	DHMZ TimestampVariant = iota // DDHHMM, UTC, 'z' suffix
	DHML                         // DDHHMM, local time, '/' suffix
	HMS                          // HHMMSS, UTC, 'h' suffix
	MDHM                         // MMDDHHMM, UTC, no suffix
)

// Timestamp holds the decoded components of an APRS timestamp field. It
// deliberately does not resolve to an absolute time.Time: spec.md's data
// model defines Timestamp as component fields, and any "which year/month
// did this actually happen in" inference belongs to a caller working with
// a wall clock, not to the pure codec.
type Timestamp struct {
	Variant TimestampVariant
	Month   int // MDHM only
	Day     int // DHMZ, DHML, MDHM
	Hour    int
	Minute  int
	Second  int // HMS only
}

// DecodeTimestamp decodes an APRS timestamp field. It accepts either a
// 7-byte buffer (DHMZ/DHML/HMS, selected by the 7th byte) or an 8-byte
// buffer (MDHM, selected when the would-be 7th-byte suffix is not one of
// 'z', '/', 'h'). It returns the number of bytes consumed.
func DecodeTimestamp(data []byte) (Timestamp, int, error) {
	if len(data) >= 7 {
		switch data[6] {
		case 'z':
			ts, err := decodeDHM(data[:7], DHMZ)
			return ts, 7, err
		case '/':
			ts, err := decodeDHM(data[:7], DHML)
			return ts, 7, err
		case 'h':
			ts, err := decodeHMS(data[:7])
			return ts, 7, err
		}
	}
	if len(data) >= 8 {
		ts, err := decodeMDHM(data[:8])
		return ts, 8, err
	}
	return Timestamp{}, 0, &TimestampError{Raw: data, Reason: "too short for any known timestamp variant"}
}

func decodeDHM(data []byte, variant TimestampVariant) (Timestamp, error) {
	day, err := digits2(data[0:2])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid day"}
	}
	hour, err := digits2(data[2:4])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid hour"}
	}
	minute, err := digits2(data[4:6])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid minute"}
	}
	if day < 1 || day > 31 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "day out of range"}
	}
	if hour > 23 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "hour out of range"}
	}
	if minute > 59 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "minute out of range"}
	}
	return Timestamp{Variant: variant, Day: day, Hour: hour, Minute: minute}, nil
}

func decodeHMS(data []byte) (Timestamp, error) {
	hour, err := digits2(data[0:2])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid hour"}
	}
	minute, err := digits2(data[2:4])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid minute"}
	}
	second, err := digits2(data[4:6])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid second"}
	}
	if hour > 23 || minute > 59 || second > 59 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "component out of range"}
	}
	return Timestamp{Variant: HMS, Hour: hour, Minute: minute, Second: second}, nil
}

func decodeMDHM(data []byte) (Timestamp, error) {
	month, err := digits2(data[0:2])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid month"}
	}
	day, err := digits2(data[2:4])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid day"}
	}
	hour, err := digits2(data[4:6])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid hour"}
	}
	minute, err := digits2(data[6:8])
	if err != nil {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "invalid minute"}
	}
	if month < 1 || month > 12 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "month out of range"}
	}
	if day < 1 || day > 31 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "day out of range"}
	}
	if hour > 23 || minute > 59 {
		return Timestamp{}, &TimestampError{Raw: data, Reason: "component out of range"}
	}
	return Timestamp{Variant: MDHM, Month: month, Day: day, Hour: hour, Minute: minute}, nil
}

func digits2(b []byte) (int, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("expected 2 digits")
	}
	if b[0] < '0' || b[0] > '9' || b[1] < '0' || b[1] > '9' {
		return 0, fmt.Errorf("non-digit character")
	}
	return int(b[0]-'0')*10 + int(b[1]-'0'), nil
}

// Encode renders the timestamp field, including its variant suffix (or
// lack thereof for MDHM), matching the width of the corresponding decode
// input.
func (t Timestamp) Encode() (string, error) {
	switch t.Variant {
	case DHMZ:
		return fmt.Sprintf("%02d%02d%02dz", t.Day, t.Hour, t.Minute), nil
	case DHML:
		return fmt.Sprintf("%02d%02d%02d/", t.Day, t.Hour, t.Minute), nil
	case HMS:
		return fmt.Sprintf("%02d%02d%02dh", t.Hour, t.Minute, t.Second), nil
	case MDHM:
		return fmt.Sprintf("%02d%02d%02d%02d", t.Month, t.Day, t.Hour, t.Minute), nil
	default:
		return "", &EncodingError{Reason: "unknown timestamp variant"}
	}
}
