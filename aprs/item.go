package aprs

// ItemReport is the ')' information field: a named position report for
// an item, whose name (unlike ObjectReport) is not padded but instead
// terminated by its own live/killed marker.
//
// Grounded on spec.md §4.5 (no direct teacher/Python precedent; the
// teacher never implements ItemReport at all).
type ItemReport struct {
	Name     string // 3-9 chars
	Live     bool   // true: '!', false (killed): '_'
	Position Position
	Comment  []byte
}

func (ItemReport) DTI() byte { return ')' }

func decodeItemReport(raw []byte) (InformationField, error) {
	if raw[0] != ')' {
		return nil, &InformationFieldError{DataType: raw[0], Raw: raw, Reason: "not an item report DTI"}
	}
	body := raw[1:]

	nameLen := -1
	var live bool
	maxLen := 10
	if len(body) < maxLen {
		maxLen = len(body)
	}
	for i := 4; i <= maxLen; i++ {
		if i >= len(body) {
			break
		}
		switch body[i-1] {
		case '!':
			nameLen, live = i, true
		case '_':
			nameLen, live = i, false
		}
		if nameLen != -1 {
			break
		}
	}
	if nameLen == -1 {
		return nil, &InformationFieldError{DataType: ')', Raw: raw, Reason: "no item live/killed terminator found"}
	}

	name := body[:nameLen-1]
	rest := body[nameLen:]

	pos, n, err := DecodePosition([]byte(rest))
	if err != nil {
		return nil, &InformationFieldError{DataType: ')', Raw: raw, Reason: "invalid position: " + err.Error()}
	}
	rest = rest[n:]

	ext, alt, comment := consumeExtensionAndComment([]byte(rest))
	pos.Extension = firstNonEmptyExtension(pos.Extension, ext)
	if alt != nil {
		pos.AltitudeFt = alt
	}

	return ItemReport{
		Name:     string(name),
		Live:     live,
		Position: pos,
		Comment:  comment,
	}, nil
}

func (it ItemReport) Encode() ([]byte, error) {
	if len(it.Name) < 3 || len(it.Name) > 9 {
		return nil, &EncodingError{Reason: "item name must be 3-9 characters"}
	}
	var out []byte
	out = append(out, ')')
	out = append(out, it.Name...)
	if it.Live {
		out = append(out, '!')
	} else {
		out = append(out, '_')
	}

	var posStr string
	var err error
	if it.Position.Compressed {
		posStr, err = EncodeCompressedPosition(it.Position)
	} else {
		posStr, err = EncodeUncompressedPosition(it.Position)
	}
	if err != nil {
		return nil, err
	}
	out = append(out, posStr...)

	if !it.Position.Compressed && it.Position.Extension.Kind != ExtNone {
		extStr, err := it.Position.Extension.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, extStr...)
	}

	out = append(out, it.Comment...)
	if !it.Position.Compressed {
		if alt := formatAltitude(it.Position.AltitudeFt); alt != "" {
			out = append(out, alt...)
		}
	}

	return out, nil
}
