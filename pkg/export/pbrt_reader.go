package export

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPBRT parses a PBRT file written by WritePBRT back into statements.
// Comments and blank lines are skipped. Directives without a quoted subtype
// (LookAt, Translate, AttributeBegin, ...) keep their bare arguments in a
// single unnamed parameter.
func ReadPBRT(r io.Reader) ([]PBRTStatement, error) {
	var stmts []PBRTStatement
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		stmt, err := parseStatement(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		stmts = append(stmts, stmt)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	return stmts, nil
}

// PBRTSummary counts what a PBRT file declares
type PBRTSummary struct {
	Statements int
	Shapes     int
	Lights     int
}

// CheckPBRT reads a PBRT file back and checks that it has a world block and
// that its attribute blocks balance
func CheckPBRT(r io.Reader) (PBRTSummary, error) {
	stmts, err := ReadPBRT(r)
	if err != nil {
		return PBRTSummary{}, err
	}

	sum := PBRTSummary{Statements: len(stmts)}
	depth := 0
	world := false
	for _, stmt := range stmts {
		switch stmt.Type {
		case "WorldBegin":
			world = true
		case "AttributeBegin":
			depth++
		case "AttributeEnd":
			depth--
			if depth < 0 {
				return sum, fmt.Errorf("pbrt: AttributeEnd without AttributeBegin")
			}
		case "Shape":
			sum.Shapes++
		case "LightSource", "AreaLightSource":
			sum.Lights++
		}
	}
	if !world {
		return sum, fmt.Errorf("pbrt: missing WorldBegin")
	}
	if depth != 0 {
		return sum, fmt.Errorf("pbrt: %d unclosed AttributeBegin", depth)
	}
	return sum, nil
}

// Param returns the named parameter of the statement
func (stmt PBRTStatement) Param(name string) (PBRTParam, bool) {
	for _, p := range stmt.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return PBRTParam{}, false
}

// Floats parses the parameter values as numbers
func (p PBRTParam) Floats() ([]float64, error) {
	out := make([]float64, len(p.Values))
	for i, v := range p.Values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		out[i] = f
	}
	return out, nil
}

// tokenizePBRT splits a statement into its keyword, quoted strings and
// bracketed value lists
func tokenizePBRT(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes, inBrackets := false, false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, char := range line {
		switch {
		case char == '"' && !inBrackets:
			current.WriteRune(char)
			if inQuotes {
				flush()
			}
			inQuotes = !inQuotes
		case char == '[' && !inQuotes:
			flush()
			current.WriteRune(char)
			inBrackets = true
		case char == ']' && !inQuotes && inBrackets:
			current.WriteRune(char)
			flush()
			inBrackets = false
		case (char == ' ' || char == '\t') && !inQuotes && !inBrackets:
			flush()
		default:
			current.WriteRune(char)
		}
	}
	flush()
	return tokens
}

func parseStatement(line string) (PBRTStatement, error) {
	parts := tokenizePBRT(line)
	if len(parts) == 0 {
		return PBRTStatement{}, fmt.Errorf("empty statement")
	}
	stmt := PBRTStatement{Type: parts[0]}
	parts = parts[1:]

	if len(parts) == 0 || !strings.HasPrefix(parts[0], "\"") {
		if len(parts) > 0 {
			stmt.Parameters = []PBRTParam{{Values: parts}}
		}
		return stmt, nil
	}

	stmt.Subtype = strings.Trim(parts[0], "\"")
	parts = parts[1:]

	for i := 0; i < len(parts); i++ {
		if !strings.HasPrefix(parts[i], "\"") {
			continue
		}
		// Quoted tokens that are not "type name" pairs, such as the
		// texture class of a Texture directive, are skipped
		def := strings.Fields(strings.Trim(parts[i], "\""))
		if len(def) != 2 {
			continue
		}
		if i+1 >= len(parts) {
			return PBRTStatement{}, fmt.Errorf("parameter %q has no value", def[1])
		}
		i++
		var values []string
		if strings.HasPrefix(parts[i], "[") && strings.HasSuffix(parts[i], "]") {
			values = strings.Fields(strings.Trim(parts[i], "[] "))
		} else {
			values = []string{parts[i]}
		}
		stmt.Parameters = append(stmt.Parameters, PBRTParam{Type: def[0], Name: def[1], Values: values})
	}
	return stmt, nil
}
