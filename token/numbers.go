package token

// number returns the length of the numeric literal at the start of d,
// or an error if d does not start with one. Accepted shapes are
// digits with an optional fraction, a bare fraction such as ".5", and
// an optional exponent.
func number(d []byte) (int, error) {
	digits := asciiDigits(d)
	if digits == 0 {
		if len(d) < 2 || d[0] != '.' {
			return 0, ErrNumber
		}
		f := asciiDigits(d[1:])
		if f == 0 {
			return 0, ErrNumber
		}
		return 1 + f + exp(d[1+f:]), nil
	}
	f := fract(d[digits:])
	return digits + f + exp(d[digits+f:]), nil
}

func fract(d []byte) int {
	if len(d) == 0 || d[0] != '.' {
		return 0
	}
	return 1 + asciiDigits(d[1:])
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}
