package texpatterns

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/anaphora/hyphenate"
)

// PatternReader streams Liang patterns from TeX-style source files.
type PatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	sequence   []rune
	weights    []int
	lineNo     int
}

// LoadPatterns parses TeX pattern data and returns a ready-to-use dictionary.
//
// Patterns are enclosed in between
//
//	\patterns{ % some comment
//	 ...
//	.wil5i
//	.ye4
//	4ab.
//	a5bal
//	a5ban
//	abe2
//	 ...
//	}
//
// Odd numbers stand for possible discretionary breakpoints, even numbers forbid
// hyphenation. Digits belong to the character immediately after them, i.e.,
//
//	"a5ban" => (a)(5b)(a)(n) => positions["aban"] = [0,5,0,0].
//
// The loader parses TeX input into a streaming PatternReader and compiles
// patterns incrementally.
//
// Exceptions from \hyphenation{...} are intentionally not loaded here.
func LoadPatterns(name string, reader io.Reader, opts ...hyphenate.DictOption) (*hyphenate.Dictionary, error) {
	r := NewPatternReader(reader)
	return hyphenate.LoadPatternReader(name, r, opts...)
}

// LoadExtendedPatterns parses TeX-flavored pattern data that additionally
// carries non-standard (Németh-style) patch clauses, and returns a
// dictionary built with LoadExtendedPatternReader. Lines without a patch
// clause behave exactly as under LoadPatterns.
func LoadExtendedPatterns(name string, reader io.Reader, opts ...hyphenate.DictOption) (*hyphenate.Dictionary, error) {
	r := NewExtendedPatternReader(reader)
	return hyphenate.LoadExtendedPatternReader(name, r, opts...)
}

func NewPatternReader(reader io.Reader) *PatternReader {
	return &PatternReader{
		scanner:  bufio.NewScanner(reader),
		sequence: make([]rune, 0, 32),
		weights:  make([]int, 0, 32),
	}
}

func (r *PatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern as (sequence, weights).
// It returns io.EOF when exhausted, or a *MalformedPatternError naming the
// source line and text if the line violates the pattern grammar.
// The returned slices are reused by subsequent calls.
func (r *PatternReader) Next() ([]rune, []int, error) {
	line, ok, err := nextPatternLine(r.scanner, &r.identifier, &r.lineNo)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, io.EOF
	}
	if derr := decodePatternLine(line, &r.sequence, &r.weights); derr != nil {
		return nil, nil, &MalformedPatternError{Line: r.lineNo, Text: line, Err: derr}
	}
	return r.sequence, r.weights, nil
}

// ExtendedPatternReader streams patterns that may carry a non-standard
// patch clause: a TeX pattern line, optionally followed by
// "/replacement,cutBefore,cutLength", where the replacement text marks
// the hyphen position with a literal '=' and cutLength is the total width
// of the window being rewritten, counting from cutBefore characters
// before the break. For example
//
//	c1k/k=k,1,2
//
// matches the same positions as the Liang pattern "c1k", but when its
// break between "c" and "k" wins, a 2-character window starting 1 character before the break
// is replaced with "k-k".
type ExtendedPatternReader struct {
	scanner    *bufio.Scanner
	identifier string
	sequence   []rune
	weights    []int
	lineNo     int
}

func NewExtendedPatternReader(reader io.Reader) *ExtendedPatternReader {
	return &ExtendedPatternReader{
		scanner:  bufio.NewScanner(reader),
		sequence: make([]rune, 0, 32),
		weights:  make([]int, 0, 32),
	}
}

func (r *ExtendedPatternReader) Identifier() string {
	return r.identifier
}

// Next returns the next pattern as (sequence, weights, patch).
// It returns io.EOF when exhausted.
func (r *ExtendedPatternReader) Next() ([]rune, []int, *hyphenate.Patch, error) {
	line, ok, err := nextPatternLine(r.scanner, &r.identifier, &r.lineNo)
	if err != nil {
		return nil, nil, nil, err
	}
	if !ok {
		return nil, nil, nil, io.EOF
	}
	body, patchClause, hasPatch := strings.Cut(line, "/")
	if derr := decodePatternLine(body, &r.sequence, &r.weights); derr != nil {
		return nil, nil, nil, &MalformedPatternError{Line: r.lineNo, Text: line, Err: derr}
	}
	if !hasPatch {
		return r.sequence, r.weights, nil, nil
	}
	patch, perr := decodePatchClause(patchClause)
	if perr != nil {
		return nil, nil, nil, &MalformedPatternError{Line: r.lineNo, Text: line, Err: perr}
	}
	return r.sequence, r.weights, patch, nil
}

// MalformedPatternError reports a pattern line this reader could not parse,
// naming the 1-based line number and the offending text.
type MalformedPatternError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedPatternError) Error() string {
	return fmt.Sprintf("texpatterns: malformed pattern at line %d (%q): %v", e.Line, e.Text, e.Err)
}

func (e *MalformedPatternError) Unwrap() error { return e.Err }

// decodePatchClause parses "replacement,cutBefore,cutLength", where
// replacement carries one literal '=' marking the position of the hyphen.
// cutLength is the total width of the window being rewritten, counted from
// cutBefore characters before the break; DropAfter is derived as
// cutLength-cutBefore, e.g. "k=k,1,3" cuts a 3-character window starting 1
// character before the break, so DropBefore=1, DropAfter=2.
func decodePatchClause(clause string) (*hyphenate.Patch, error) {
	fields := strings.Split(clause, ",")
	if len(fields) != 3 {
		return nil, fmt.Errorf("expected 3 comma-separated fields, got %d", len(fields))
	}
	replacement, hyphenAt, hasEquals := strings.Cut(fields[0], "=")
	if !hasEquals {
		return nil, fmt.Errorf("replacement %q is missing '=' hyphen marker", fields[0])
	}
	cutBefore, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return nil, fmt.Errorf("invalid cutBefore %q: %w", fields[1], err)
	}
	cutLength, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid cutLength %q: %w", fields[2], err)
	}
	if cutLength < cutBefore {
		return nil, fmt.Errorf("cutLength %d is smaller than cutBefore %d", cutLength, cutBefore)
	}
	return &hyphenate.Patch{
		DropBefore:  cutBefore,
		DropAfter:   cutLength - cutBefore,
		Replacement: replacement + hyphenAt,
		HyphenAt:    len([]rune(replacement)),
	}, nil
}

// nextPatternLine advances scanner past comments, message directives and
// \hyphenation{} blocks, and returns the next usable pattern line.
func nextPatternLine(scanner *bufio.Scanner, identifier *string, lineNo *int) (string, bool, error) {
	for scanner.Scan() {
		*lineNo++
		line := scanner.Text()
		if strings.HasPrefix(line, "\\message{") {
			*identifier = line[9 : len(line)-1]
			continue
		}
		if strings.HasPrefix(line, "\\hyphenation{") {
			*lineNo += skipTeXBlock(scanner)
			continue
		}
		if strings.HasPrefix(line, "%") || strings.HasPrefix(line, "\\") ||
			line == "" || strings.HasPrefix(line, "}") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true, nil
	}
	if err := scanner.Err(); err != nil {
		return "", false, err
	}
	return "", false, nil
}

// decodePatternLine decodes one pattern line into its scalar sequence and
// interleaved Liang weights. Per the documented grammar, scalars are
// optionally separated by a single decimal digit; two consecutive digits
// are not a legal weight and are reported as a malformed pattern rather
// than silently misindexing the weights vector against the sequence.
func decodePatternLine(line string, sequence *[]rune, weights *[]int) error {
	*sequence = (*sequence)[:0]
	*weights = (*weights)[:0]
	wasDigit := false
	for _, ch := range line {
		if unicode.IsDigit(ch) {
			if wasDigit {
				return fmt.Errorf("consecutive digits in pattern %q", line)
			}
			d, _ := strconv.Atoi(string(ch))
			*weights = append(*weights, d)
			wasDigit = true
			continue
		}
		*sequence = append(*sequence, ch)
		if wasDigit {
			wasDigit = false
		} else {
			*weights = append(*weights, 0)
		}
	}
	return nil
}

func skipTeXBlock(scanner *bufio.Scanner) (linesConsumed int) {
	for scanner.Scan() {
		linesConsumed++
		line := scanner.Text()
		if strings.HasPrefix(line, "}") {
			return linesConsumed
		}
	}
	return linesConsumed
}
