package cjson

// Decode parses a JSON text into a Value tree (§2, §4.4, §6).
func Decode(data []byte, opts ...DecodeOption) (Value, error) {
	cfg := newDecodeConfig(opts)
	c := newCursor(data)

	val, err := decodeValue(c, 0, &cfg)
	if err != nil {
		return Value{}, err
	}

	c.skipSpaces()
	if !c.eof() {
		return Value{}, newDecodeErr(c.pos, "extra data after JSON description at position %d", c.pos)
	}
	return val, nil
}

// decodeValue is the top-level decode dispatch of §4.4: it skips leading
// whitespace, then chooses a decoder by the first remaining byte.
func decodeValue(c *cursor, depth int, cfg *decodeConfig) (Value, error) {
	c.skipSpaces()

	if c.eof() {
		return Value{}, newDecodeErr(c.pos, "empty JSON description")
	}

	switch ch := c.peek(); {
	case ch == '{':
		return decodeObject(c, depth, cfg)
	case ch == '[':
		return decodeArray(c, depth, cfg)
	case ch == '"':
		return decodeStringWith(c, cfg)
	case ch == 't' || ch == 'f':
		return decodeBool(c)
	case ch == 'n':
		return decodeNull(c)
	case ch == 'N':
		return decodeNaN(c)
	case ch == 'I':
		return decodeInfinity(c)
	case ch == '+' || ch == '-':
		if c.peekAt(1) == 'I' {
			return decodeInfinity(c)
		}
		return decodeNumber(c)
	case isDigit(ch):
		return decodeNumber(c)
	default:
		return Value{}, newDecodeErr(c.pos, "cannot parse JSON description")
	}
}
