/*
File : kuin-parser/lexer/number.go

The numeric-literal state machine, isolated from the rest of the scanner
per the design note that calls for testing it exhaustively on its own.
Kuin numerals support radices 2-36 (written `r#digits`), decimal (no
radix marker), and hexadecimal (`#digits`, uppercase only), each with an
optional fractional part and an optional `e`-introduced exponent. The
exponent is itself a (possibly signed) numeral, scanned on its own, and
scales the value by that power of the mantissa's radix.

A malformed radix marker (out of [2,36], or the reserved 10/16) or a digit
outside its radix's alphabet is a FatalNumberError: the caller must not
backtrack past it. A `#` not followed by uppercase hex digits is reported
by ok=false so the caller can fall back to scanning other tokens from the
same position. An explicit radix marker with no digits after it (`2#`)
falls back to scanning its leading digits as a plain decimal.
*/
package lexer

import "fmt"

// FatalNumberError marks a malformed numeral that must not be
// recovered from by backtracking (§7, §9).
type FatalNumberError struct {
	Line, Col int
	Message   string
}

func (e *FatalNumberError) Error() string {
	return fmt.Sprintf("%d:%d: fatal: %s", e.Line, e.Col, e.Message)
}

// numeral is the result of successfully scanning one numeric literal body
// (without any top-level sign, which the caller/parser combines in).
type numeral struct {
	IntValue  int64
	RealValue float64
	IsReal    bool
	End       int // byte offset just past the literal
}

func digitValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}

// scanRadixDigits consumes a run of [0-9A-Z] starting at pos, validating
// every digit against radix. Returns the accumulated value, the digit
// count, and the new position. A digit outside the radix's alphabet is
// fatal.
func scanRadixDigits(src string, pos, radix, line, col int) (value int64, count, newPos int, err *FatalNumberError) {
	value = 0
	count = 0
	i := pos
	for i < len(src) {
		c := src[i]
		dv, ok := digitValue(c)
		if !ok {
			break
		}
		if dv >= radix {
			return 0, 0, i, &FatalNumberError{Line: line, Col: col,
				Message: fmt.Sprintf("digit %q is not valid in base %d", c, radix)}
		}
		value = value*int64(radix) + int64(dv)
		count++
		i++
	}
	return value, count, i, nil
}

// scanNumeral attempts to scan one numeral (optionally signed, for use in
// exponents) starting at pos. ok=false means the position does not start
// a valid numeral at all (caller should try something else); a non-nil
// err means a fatal, non-recoverable malformation was found.
func scanNumeral(src string, pos, line, col int, allowSign bool) (n numeral, ok bool, err *FatalNumberError) {
	sign := int64(1)
	i := pos
	if allowSign && i < len(src) && (src[i] == '+' || src[i] == '-') {
		if src[i] == '-' {
			sign = -1
		}
		i++
	}

	radix := 10
	intStart := i
	var bodyStart int
	matchedExplicit := false

	// Explicit-radix form: [1-9][0-9]?#...   Try the 2-digit prefix first,
	// then the 1-digit prefix, mirroring greedy-then-backtrack regex
	// semantics.
	if i < len(src) && src[i] >= '1' && src[i] <= '9' {
		for _, width := range []int{2, 1} {
			if i+width < len(src) && src[i+width] == '#' {
				digits := src[i : i+width]
				if width == 2 && !(digits[1] >= '0' && digits[1] <= '9') {
					continue
				}
				r := 0
				for _, c := range []byte(digits) {
					r = r*10 + int(c-'0')
				}
				radix = r
				bodyStart = i + width + 1
				matchedExplicit = true
				break
			}
		}
	}

	if matchedExplicit {
		if radix < 2 || radix > 36 || radix == 10 || radix == 16 {
			return numeral{}, false, &FatalNumberError{Line: line, Col: col,
				Message: fmt.Sprintf("invalid explicit radix %d", radix)}
		}
		intVal, intCount, after, e := scanRadixDigits(src, bodyStart, radix, line, col)
		if e != nil {
			return numeral{}, false, e
		}
		if intCount > 0 {
			return finishNumeral(src, after, radix, sign, intVal, line, col)
		}
		// "2#" with no digits after the marker: the explicit-radix form
		// doesn't match after all, so fall through and retry as plain
		// decimal from the same start position (mirrors alternation
		// backtracking onto the next grammar alternative).
	}

	// Hex form: #[0-9A-F]+(\.[0-9A-F]+)?
	if i < len(src) && src[i] == '#' {
		hexStart := i + 1
		intVal, intCount, after, e := scanRadixDigits(src, hexStart, 16, line, col)
		if e != nil {
			return numeral{}, false, e
		}
		if intCount == 0 {
			return numeral{}, false, nil
		}
		return finishNumeral(src, after, 16, sign, intVal, line, col)
	}

	// Decimal form: [0-9]+(\.[0-9]+)?
	if i < len(src) && src[i] >= '0' && src[i] <= '9' {
		intVal, intCount, after, e := scanRadixDigits(src, intStart, 10, line, col)
		if e != nil {
			return numeral{}, false, e
		}
		if intCount == 0 {
			return numeral{}, false, nil
		}
		return finishNumeral(src, after, 10, sign, intVal, line, col)
	}

	return numeral{}, false, nil
}

// finishNumeral handles the optional fractional part and optional
// exponent that trail any of the three body forms, then applies sign.
func finishNumeral(src string, after, radix int, sign, intVal int64, line, col int) (numeral, bool, *FatalNumberError) {
	hasFrac := false
	fracValue := 0.0
	pos := after

	if pos < len(src) && src[pos] == '.' && pos+1 < len(src) && isRadixDigitByte(src[pos+1], radix) {
		fracStart := pos + 1
		fv, count, fracEnd, err := scanRadixDigits(src, fracStart, radix, line, col)
		if err != nil {
			return numeral{}, false, err
		}
		if count > 0 {
			hasFrac = true
			divisor := 1.0
			for k := 0; k < count; k++ {
				divisor *= float64(radix)
			}
			fracValue = float64(fv) / divisor
			pos = fracEnd
		}
	}

	base := float64(intVal) + fracValue
	hasExp := false
	exp := int64(0)

	if pos < len(src) && src[pos] == 'e' {
		expNumeral, ok, err := scanNumeral(src, pos+1, line, col, true)
		if err != nil {
			return numeral{}, false, err
		}
		if ok {
			hasExp = true
			if expNumeral.IsReal {
				exp = int64(expNumeral.RealValue)
			} else {
				exp = expNumeral.IntValue
			}
			pos = expNumeral.End
		}
	}

	if hasExp {
		mult := 1.0
		e := exp
		neg := e < 0
		if neg {
			e = -e
		}
		for k := int64(0); k < e; k++ {
			mult *= float64(radix)
		}
		if neg {
			mult = 1.0 / mult
		}
		base *= mult
	}

	isReal := hasFrac || hasExp
	n := numeral{End: pos, IsReal: isReal}
	if isReal {
		n.RealValue = base * float64(sign)
	} else {
		n.IntValue = intVal * sign
	}
	return n, true, nil
}

func isRadixDigitByte(c byte, radix int) bool {
	dv, ok := digitValue(c)
	return ok && dv < radix
}
