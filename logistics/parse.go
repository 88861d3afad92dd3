package logistics

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkrivich/logiplan/model"
)

// tokenScanner yields whitespace-separated tokens from a reader, with
// %-prefixed comment text stripped from every line before tokenizing.
type tokenScanner struct {
	tokens []string
	pos    int
}

func newTokenScanner(r io.Reader) (*tokenScanner, error) {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}

	return &tokenScanner{tokens: tokens}, nil
}

func (s *tokenScanner) nextInt() (int, error) {
	if s.pos >= len(s.tokens) {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrInputMalformed)
	}
	tok := s.tokens[s.pos]
	s.pos++

	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInputMalformed, tok)
	}

	return v, nil
}

// ParseFile opens path and parses it per the format documented in the
// external interface contract, returning ErrInputOpenFailure if the file
// cannot be opened and ErrInputMalformed for any structural problem.
func ParseFile(path string) (*model.Setting, Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Problem{}, fmt.Errorf("%w: %v", ErrInputOpenFailure, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a single problem instance from r:
//
//	cityCount
//	placeCount
//	place0_city … place_{P-1}_city
//	airport_city0 … airport_city_{C-1}
//	truckCount
//	truck0_place … truck_{T-1}_place
//	airplaneCount
//	airplane0_airport … airplane_{A-1}_airport
//	packageCount
//	pkg0_pos pkg0_dest
//	…
func Parse(r io.Reader) (*model.Setting, Problem, error) {
	sc, err := newTokenScanner(r)
	if err != nil {
		return nil, Problem{}, err
	}

	cityCount, err := sc.nextInt()
	if err != nil {
		return nil, Problem{}, err
	}
	placeCount, err := sc.nextInt()
	if err != nil {
		return nil, Problem{}, err
	}

	placeCity := make([]int, placeCount)
	for i := range placeCity {
		if placeCity[i], err = sc.nextInt(); err != nil {
			return nil, Problem{}, err
		}
	}

	airport := make([]int, cityCount)
	for i := range airport {
		if airport[i], err = sc.nextInt(); err != nil {
			return nil, Problem{}, err
		}
	}

	setting, err := model.NewSetting(cityCount, placeCity, airport)
	if err != nil {
		return nil, Problem{}, fmt.Errorf("%w: %v", ErrInputMalformed, err)
	}

	trucks, err := parseVehicles(sc)
	if err != nil {
		return nil, Problem{}, err
	}
	airplanes, err := parseVehicles(sc)
	if err != nil {
		return nil, Problem{}, err
	}

	packageCount, err := sc.nextInt()
	if err != nil {
		return nil, Problem{}, err
	}
	packages := make([]model.Package, packageCount)
	for i := range packages {
		pos, err := sc.nextInt()
		if err != nil {
			return nil, Problem{}, err
		}
		dest, err := sc.nextInt()
		if err != nil {
			return nil, Problem{}, err
		}
		packages[i] = model.Package{Position: pos, Destination: dest, State: model.Out, Vehicle: -1}
	}

	initial := NewConfiguration(setting, trucks, airplanes, packages)

	return setting, NewProblem(setting, initial), nil
}

func parseVehicles(sc *tokenScanner) ([]model.Vehicle, error) {
	count, err := sc.nextInt()
	if err != nil {
		return nil, err
	}
	vehicles := make([]model.Vehicle, count)
	for i := range vehicles {
		pos, err := sc.nextInt()
		if err != nil {
			return nil, err
		}
		vehicles[i] = model.Vehicle{Position: pos}
	}

	return vehicles, nil
}
