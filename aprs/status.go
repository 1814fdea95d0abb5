package aprs

// StatusReport is the '>' information field: free text, optionally
// preceded by a DHMZ timestamp.
//
// Grounded directly on spec.md §4.5 (no teacher precedent at all — the
// teacher doesn't implement status reports).
type StatusReport struct {
	Timestamp *Timestamp // DHMZ only, or nil
	Text      string
}

func (StatusReport) DTI() byte { return '>' }

func decodeStatusReport(raw []byte) (InformationField, error) {
	if raw[0] != '>' {
		return nil, &InformationFieldError{DataType: raw[0], Raw: raw, Reason: "not a status report DTI"}
	}
	body := raw[1:]

	var ts *Timestamp
	text := string(body)
	if len(body) >= 7 && body[6] == 'z' && allDigits([]byte(body[:6])) {
		decoded, err := decodeDHM([]byte(body[:7]), DHMZ)
		if err == nil {
			ts = &decoded
			text = string(body[7:])
		}
	}

	maxLen := 62
	if ts != nil {
		maxLen = 55
	}
	if len(text) > maxLen {
		return nil, &InformationFieldError{DataType: '>', Raw: raw, Reason: "status text exceeds maximum length"}
	}

	return StatusReport{Timestamp: ts, Text: text}, nil
}

func (s StatusReport) Encode() ([]byte, error) {
	maxLen := 62
	if s.Timestamp != nil {
		maxLen = 55
	}
	if len(s.Text) > maxLen {
		return nil, &EncodingError{Reason: "status text exceeds maximum length"}
	}

	var out []byte
	out = append(out, '>')
	if s.Timestamp != nil {
		if s.Timestamp.Variant != DHMZ {
			return nil, &EncodingError{Reason: "status report timestamp must be DHMZ"}
		}
		ts, err := s.Timestamp.Encode()
		if err != nil {
			return nil, err
		}
		out = append(out, ts...)
	}
	out = append(out, s.Text...)
	return out, nil
}
