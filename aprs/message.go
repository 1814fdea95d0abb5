package aprs

import (
	"strconv"
	"strings"
)

// Message is the ':' information field: a directed message to another
// station, optionally carrying a message number and/or acting as an
// acknowledgement ("ackNNN") or rejection ("rejNNN") of one.
//
// Grounded on original_source/aprs3/classes.go's Message.from_bytes
// (column-10 colon check, trailing-'{' partition for the message number)
// and the teacher's aprs/message.go, corrected to match spec.md §3/§4.5's
// column-exact semantics rather than strings.TrimSpace-everywhere.
type Message struct {
	Addressee string // 1-9 chars, space-padded to 9 on the wire
	Text      string // <= 67 bytes
	Number    string // optional, 1-5 chars
}

func (Message) DTI() byte { return ':' }

func decodeMessage(raw []byte) (InformationField, error) {
	if raw[0] != ':' {
		return nil, &InformationFieldError{DataType: raw[0], Raw: raw, Reason: "not a message DTI"}
	}
	body := raw[1:]
	if len(body) < 10 {
		return nil, &InformationFieldError{DataType: ':', Raw: raw, Reason: "message too short for addressee+separator"}
	}

	addressee := strings.TrimRight(string(body[:9]), " ")
	if addressee == "" {
		return nil, &InformationFieldError{DataType: ':', Raw: raw, Reason: "addressee is blank"}
	}
	if body[9] != ':' {
		return nil, &InformationFieldError{DataType: ':', Raw: raw, Reason: "missing ':' separator at column 10"}
	}

	text := string(body[10:])
	number := ""
	tail := text
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	if idx := strings.LastIndexByte(tail, '{'); idx >= 0 {
		splitAt := len(text) - (len(tail) - idx)
		number = text[splitAt+1:]
		text = text[:splitAt]
	}

	return Message{
		Addressee: addressee,
		Text:      text,
		Number:    number,
	}, nil
}

func (m Message) Encode() ([]byte, error) {
	if len(m.Addressee) < 1 || len(m.Addressee) > 9 {
		return nil, &EncodingError{Reason: "addressee must be 1-9 characters"}
	}
	if len(m.Text) > 67 {
		return nil, &EncodingError{Reason: "message text must be <= 67 bytes"}
	}
	if len(m.Number) > 5 {
		return nil, &EncodingError{Reason: "message number must be <= 5 characters"}
	}

	var out []byte
	out = append(out, ':')
	out = append(out, m.Addressee...)
	out = append(out, strings.Repeat(" ", 9-len(m.Addressee))...)
	out = append(out, ':')
	out = append(out, m.Text...)
	if m.Number != "" {
		out = append(out, '{')
		out = append(out, m.Number...)
	}
	return out, nil
}

// Ack reports whether the message text is an acknowledgement ("ackNNN")
// of another message, and if so, the acknowledged message number.
func (m Message) Ack() (number string, ok bool) {
	return matchAckReject(m.Text, "ack")
}

// Reject reports whether the message text is a rejection ("rejNNN") of
// another message, and if so, the rejected message number.
func (m Message) Reject() (number string, ok bool) {
	return matchAckReject(m.Text, "rej")
}

func matchAckReject(text, prefix string) (string, bool) {
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	num := text[len(prefix):]
	if len(num) < 1 || len(num) > 5 {
		return "", false
	}
	if _, err := strconv.Atoi(num); err != nil {
		return "", false
	}
	return num, true
}
