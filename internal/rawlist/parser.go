package rawlist

import (
	// standard
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	// external
	"github.com/charmbracelet/log"
	"github.com/miekg/dns"

	// local
	"listmerge/internal/config"
)

// tokenCutset is trimmed from both ends of a candidate token before
// validation. Raw feeds love to wrap domains in quotes and brackets.
const tokenCutset = "\"'`.,;:!?|<>()[]{}"

var (
	errBlankLine   = errors.New("blank line")
	errCommentLine = errors.New("comment line")
	errEmptyToken  = errors.New("empty token")
	errNoDot       = errors.New("token has no dot")
	errNotADomain  = errors.New("token is not a valid domain name")
)

// Result is the outcome of parsing one raw input file.
type Result struct {
	Domains []string // accepted tokens, input order, duplicates collapsed
	Lines   int      // total lines read
	Skipped int      // lines dropped (blank, comment or invalid token)
}

// ParseFile reads a raw list of candidate domains: one domain per line,
// domain = first whitespace-delimited token, everything after it
// ignored. Each line goes through the substitution table before
// tokenization. The progress callback, if non-nil, fires once per line.
func ParseFile(
	filePath string,
	subs config.SubTable,
	progress func(),
) (*Result, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("can't open raw file %q: %w", filePath, err)
	}
	defer file.Close()

	res := &Result{}
	seen := make(map[string]struct{})
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		res.Lines++
		if progress != nil {
			progress()
		}
		token, err := Normalize(scanner.Text(), subs)
		if err != nil {
			res.Skipped++
			log.Debug("skipping raw line",
				"file", filePath, "line", res.Lines, "reason", err)
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		res.Domains = append(res.Domains, token)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("can't read raw file %q: %w", filePath, err)
	}
	return res, nil
}

// Normalize applies the substitution table to one raw line and extracts
// its domain token: first field, lower-cased, stripped of surrounding
// punctuation. The returned error names the rejection reason.
func Normalize(line string, subs config.SubTable) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errBlankLine
	}
	if strings.HasPrefix(line, "#") {
		return "", errCommentLine
	}
	line = subs.Apply(line)

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", errEmptyToken
	}
	token := strings.ToLower(strings.Trim(fields[0], tokenCutset))
	if token == "" {
		return "", errEmptyToken
	}
	if !strings.Contains(token, ".") {
		return "", errNoDot
	}
	if strings.ContainsAny(token, "/:") {
		return "", errNotADomain
	}
	if _, ok := dns.IsDomainName(token); !ok {
		return "", errNotADomain
	}
	return token, nil
}
