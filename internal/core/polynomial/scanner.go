package polynomial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/custodia-labs/computor-cli/internal/core/domain"
)

// scanState is the position of the scanner within the current term.
type scanState int

const (
	// seekTermStart: no coefficient digit, symbol or caret seen yet.
	// Signs here are unary and fold into the term's polarity.
	seekTermStart scanState = iota

	// inCoefficient: accumulating coefficient digits.
	inCoefficient

	// afterSymbol: the indeterminate has been read, no caret yet.
	afterSymbol

	// inExponent: accumulating exponent digits after '^'.
	inExponent
)

func (s scanState) String() string {
	switch s {
	case seekTermStart:
		return "SeekTermStart"
	case inCoefficient:
		return "InCoefficient"
	case afterSymbol:
		return "AfterSymbol"
	case inExponent:
		return "InExponent"
	default:
		return "Unknown"
	}
}

// termBuilder accumulates the pieces of one term chunk.
type termBuilder struct {
	polarity    float64
	coefficient strings.Builder
	exponent    strings.Builder
	hasSymbol   bool
	hasCaret    bool
}

func newTermBuilder() *termBuilder {
	return &termBuilder{polarity: 1}
}

// build converts the accumulated chunk into a Term.
func (b *termBuilder) build() (domain.Term, error) {
	coefficient := b.polarity
	if digits := b.coefficient.String(); strings.ContainsAny(digits, "0123456789") {
		v, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return domain.Term{}, fmt.Errorf("%w: malformed coefficient %q", domain.ErrInvalidPolynomial, digits)
		}
		coefficient = b.polarity * v
	}

	exponent := 0
	if b.hasSymbol {
		exponent = 1
		if digits := b.exponent.String(); digits != "" {
			v, err := strconv.Atoi(digits)
			if err != nil {
				return domain.Term{}, fmt.Errorf("%w: malformed exponent %q", domain.ErrInvalidPolynomial, digits)
			}
			exponent = v
		}
	}

	return domain.Term{Coefficient: coefficient, Exponent: exponent}, nil
}

// scanner tokenises one whitespace-free side of an equation.
type scanner struct {
	src    string
	strict bool
	state  scanState
	term   *termBuilder
	terms  []domain.Term
}

// ParseTerms splits one side of an equation into its terms, in source order.
//
// In tolerant mode characters that fit no term pattern are skipped. In strict
// mode they fail with domain.ErrInvalidPolynomial. A fractional exponent is
// rejected in both modes.
func ParseTerms(side string, strict bool) ([]domain.Term, error) {
	sc := &scanner{
		src:    side,
		strict: strict,
		state:  seekTermStart,
		term:   newTermBuilder(),
	}
	if err := sc.run(); err != nil {
		return nil, err
	}
	return sc.terms, nil
}

func (sc *scanner) run() error {
	for i, r := range sc.src {
		var err error
		switch {
		case r == '+' || r == '-':
			err = sc.sign(r)
		case r == '^':
			err = sc.caret(i)
		case isDigit(r) || r == '.':
			err = sc.digit(i, r)
		case unicode.IsLetter(r):
			err = sc.letter(i, r)
		case r == '*':
			// Multiplication is implicit between coefficient and symbol.
		default:
			if sc.strict {
				err = fmt.Errorf("%w: unexpected %q at offset %d", domain.ErrInvalidPolynomial, r, i)
			}
		}
		if err != nil {
			return err
		}
	}
	return sc.emit()
}

// sign either toggles the current polarity or closes the completed term.
func (sc *scanner) sign(r rune) error {
	if sc.state != seekTermStart {
		if err := sc.emit(); err != nil {
			return err
		}
	}
	if r == '-' {
		sc.term.polarity = -sc.term.polarity
	}
	return nil
}

func (sc *scanner) caret(offset int) error {
	if sc.strict {
		if sc.term.hasCaret {
			return fmt.Errorf("%w: repeated '^' at offset %d", domain.ErrInvalidPolynomial, offset)
		}
		if !sc.term.hasSymbol {
			return fmt.Errorf("%w: '^' without indeterminate at offset %d", domain.ErrInvalidPolynomial, offset)
		}
	}
	sc.term.hasCaret = true
	sc.state = inExponent
	return nil
}

func (sc *scanner) digit(offset int, r rune) error {
	switch sc.state {
	case inExponent:
		if r == '.' {
			return fmt.Errorf("%w: non-integer exponent at offset %d", domain.ErrInvalidPolynomial, offset)
		}
		sc.term.exponent.WriteRune(r)
	case afterSymbol:
		if sc.strict {
			return fmt.Errorf("%w: digit after indeterminate at offset %d", domain.ErrInvalidPolynomial, offset)
		}
		sc.term.coefficient.WriteRune(r)
	default:
		if sc.strict && r == '.' && strings.Contains(sc.term.coefficient.String(), ".") {
			return fmt.Errorf("%w: repeated '.' at offset %d", domain.ErrInvalidPolynomial, offset)
		}
		sc.term.coefficient.WriteRune(r)
		sc.state = inCoefficient
	}
	return nil
}

func (sc *scanner) letter(offset int, r rune) error {
	if sc.strict && sc.term.hasSymbol {
		return fmt.Errorf("%w: second indeterminate %q in one term at offset %d",
			domain.ErrInvalidPolynomial, r, offset)
	}
	sc.term.hasSymbol = true
	if sc.state != inExponent {
		sc.state = afterSymbol
	}
	return nil
}

// emit closes the current term, if it has any content, and resets the scanner.
func (sc *scanner) emit() error {
	defer func() {
		sc.term = newTermBuilder()
		sc.state = seekTermStart
	}()

	if sc.state == seekTermStart {
		return nil
	}
	if sc.strict && sc.term.hasCaret && sc.term.exponent.Len() == 0 {
		return fmt.Errorf("%w: '^' without exponent", domain.ErrInvalidPolynomial)
	}

	t, err := sc.term.build()
	if err != nil {
		return err
	}
	sc.terms = append(sc.terms, t)
	return nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
