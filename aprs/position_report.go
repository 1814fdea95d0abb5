package aprs

// PositionReport is the '!' / '=' / '/' / '@' information field: an
// APRS position, optionally timestamped, optionally messaging-capable.
//
// Grounded on original_source/aprs3/classes.go's PositionReport.from_bytes
// (DTI dispatch, timestamp-then-position parse order) and generalized
// from the teacher's aprs/parser.go switch statement (which only handled
// three of the four DTIs and ignored timestamps and extensions).
type PositionReport struct {
	Messaging bool
	Timestamp *Timestamp // nil for '!' and '='
	Position  Position
	Comment   []byte
}

func (p PositionReport) DTI() byte {
	switch {
	case p.Timestamp != nil && p.Messaging:
		return '@'
	case p.Timestamp != nil:
		return '/'
	case p.Messaging:
		return '='
	default:
		return '!'
	}
}

func decodePositionReport(raw []byte) (InformationField, error) {
	dti := raw[0]
	body := raw[1:]

	var ts *Timestamp
	switch dti {
	case '/', '@':
		decoded, n, err := DecodeTimestamp(body)
		if err != nil {
			return nil, &InformationFieldError{DataType: dti, Raw: raw, Reason: "invalid timestamp: " + err.Error()}
		}
		ts = &decoded
		body = body[n:]
	case '!', '=':
		// no timestamp
	default:
		return nil, &InformationFieldError{DataType: dti, Raw: raw, Reason: "not a position report DTI"}
	}

	pos, n, err := DecodePosition(body)
	if err != nil {
		return nil, &InformationFieldError{DataType: dti, Raw: raw, Reason: "invalid position: " + err.Error()}
	}
	rest := body[n:]

	ext, alt, comment := consumeExtensionAndComment(rest)
	pos.Extension = firstNonEmptyExtension(pos.Extension, ext)
	if alt != nil {
		pos.AltitudeFt = alt
	}

	return PositionReport{
		Messaging: dti == '=' || dti == '@',
		Timestamp: ts,
		Position:  pos,
		Comment:   comment,
	}, nil
}

// firstNonEmptyExtension prefers a compressed-position-derived extension
// (already set on the position) over one found in the comment tail, since
// a compressed position's extension is embedded in the 13-byte block
// itself and the comment-derived one only applies to uncompressed
// positions.
func firstNonEmptyExtension(fromPosition, fromComment DataExtension) DataExtension {
	if fromPosition.Kind != ExtNone {
		return fromPosition
	}
	return fromComment
}

func (p PositionReport) Encode() ([]byte, error) {
	var out []byte
	out = append(out, p.DTI())

	if p.Timestamp != nil {
		ts, err := p.Timestamp.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}

	var posStr string
	var err error
	if p.Position.Compressed {
		posStr, err = EncodeCompressedPosition(p.Position)
	} else {
		posStr, err = EncodeUncompressedPosition(p.Position)
	}
	if err != nil {
		return nil, err
	}
	out = append(out, posStr...)

	if !p.Position.Compressed && p.Position.Extension.Kind != ExtNone {
		extStr, err := p.Position.Extension.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, extStr...)
	}

	out = append(out, p.Comment...)
	if !p.Position.Compressed {
		if alt := formatAltitude(p.Position.AltitudeFt); alt != "" {
			out = append(out, alt...)
		}
	}

	return out, nil
}
