package aprs

import "strings"

// ObjectReport is the ';' information field: a named, timestamped
// position report for an object that may not itself be a station.
//
// Grounded on spec.md §4.5 and the teacher's aprs/parser.go
// parseObjectPosition, generalized from "extract lat/lon only" to a full
// ObjectReport value with name/live/timestamp/comment.
type ObjectReport struct {
	Name      string // 1-9 chars, space-padded to 9 on the wire
	Live      bool   // true: '*', false (killed): '_'
	Timestamp Timestamp
	Position  Position
	Comment   []byte
}

func (ObjectReport) DTI() byte { return ';' }

func decodeObjectReport(raw []byte) (InformationField, error) {
	if raw[0] != ';' {
		return nil, &InformationFieldError{DataType: raw[0], Raw: raw, Reason: "not an object report DTI"}
	}
	body := raw[1:]
	if len(body) < 10 {
		return nil, &InformationFieldError{DataType: ';', Raw: raw, Reason: "object report too short for name+marker"}
	}

	name := strings.TrimRight(string(body[:9]), " ")
	if name == "" {
		return nil, &InformationFieldError{DataType: ';', Raw: raw, Reason: "object name is blank"}
	}

	marker := body[9]
	var live bool
	switch marker {
	case '*':
		live = true
	case '_':
		live = false
	default:
		return nil, &InformationFieldError{DataType: ';', Raw: raw, Reason: "invalid live/killed marker"}
	}

	rest := body[10:]
	ts, n, err := DecodeTimestamp([]byte(rest))
	if err != nil {
		return nil, &InformationFieldError{DataType: ';', Raw: raw, Reason: "invalid timestamp: " + err.Error()}
	}
	rest = rest[n:]

	pos, n, err := DecodePosition([]byte(rest))
	if err != nil {
		return nil, &InformationFieldError{DataType: ';', Raw: raw, Reason: "invalid position: " + err.Error()}
	}
	rest = rest[n:]

	ext, alt, comment := consumeExtensionAndComment([]byte(rest))
	pos.Extension = firstNonEmptyExtension(pos.Extension, ext)
	if alt != nil {
		pos.AltitudeFt = alt
	}

	return ObjectReport{
		Name:      name,
		Live:      live,
		Timestamp: ts,
		Position:  pos,
		Comment:   comment,
	}, nil
}

func (o ObjectReport) Encode() ([]byte, error) {
	if len(o.Name) < 1 || len(o.Name) > 9 {
		return nil, &EncodingError{Reason: "object name must be 1-9 characters"}
	}
	var out []byte
	out = append(out, ';')
	out = append(out, o.Name...)
	out = append(out, strings.Repeat(" ", 9-len(o.Name))...)
	if o.Live {
		out = append(out, '*')
	} else {
		out = append(out, '_')
	}

	ts, err := o.Timestamp.Encode()
	if err != nil {
		return nil, err
	}
	out = append(out, ts...)

	var posStr string
	if o.Position.Compressed {
		posStr, err = EncodeCompressedPosition(o.Position)
	} else {
		posStr, err = EncodeUncompressedPosition(o.Position)
	}
	if err != nil {
		return nil, err
	}
	out = append(out, posStr...)

	if !o.Position.Compressed && o.Position.Extension.Kind != ExtNone {
		extStr, err := o.Position.Extension.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, extStr...)
	}

	out = append(out, o.Comment...)
	if !o.Position.Compressed {
		if alt := formatAltitude(o.Position.AltitudeFt); alt != "" {
			out = append(out, alt...)
		}
	}

	return out, nil
}
