package triangle

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Parser Reads triangular rows from a text file: one row per line, values
// separated by whitespace (or by a custom separator).
type Parser struct {
	filename  string
	separator string
	verbose   bool
}

func (parser *Parser) String() string {
	return fmt.Sprintf(`
Triangle parser parameters:
	filename: '%s'
	separator: '%s'
	verbose?: %t
	`,
		parser.filename,
		parser.separator,
		parser.verbose,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename: fileName,
		verbose:  false,
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithSeparator(separator string) func(*Parser) {
	return func(parser *Parser) {
		parser.separator = separator
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}

// Parse Reads the file and returns triangular rows. Blank lines are skipped.
func (parser *Parser) Parse() ([][]int64, error) {
	f, err := os.Open(parser.filename)
	if err != nil {
		return nil, errors.Wrap(err, "File open")
	}
	defer f.Close()

	if parser.verbose {
		fmt.Printf("Reading triangle rows...")
	}
	st := time.Now()
	rows, err := parser.readRows(f)
	if err != nil {
		return nil, errors.Wrap(err, "Can't read rows")
	}
	if parser.verbose {
		fmt.Printf("Done in %v\n\tRows: %d\n", time.Since(st), len(rows))
	}
	return rows, nil
}

func (parser *Parser) readRows(f *os.File) ([][]int64, error) {
	rows := [][]int64{}
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := []string{}
		if parser.separator == "" {
			tokens = strings.Fields(line)
		} else {
			for _, token := range strings.Split(line, parser.separator) {
				tokens = append(tokens, strings.TrimSpace(token))
			}
		}
		row := make([]int64, 0, len(tokens))
		for _, token := range tokens {
			value, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("Bad value '%s' on line %d", token, lineNum)
			}
			row = append(row, value)
		}
		rows = append(rows, row)
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "Scanner error")
	}
	return rows, nil
}
