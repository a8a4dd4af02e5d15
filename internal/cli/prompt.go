package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"
)

var tickerPattern = regexp.MustCompile(`^[A-Z0-9.^=-]+$`)

// NormalizeTicker upper-cases and trims a ticker symbol.
func NormalizeTicker(s string) string {
	return strings.TrimSpace(strings.ToUpper(s))
}

// ValidateTicker checks the basic shape of a ticker symbol.
func ValidateTicker(s string) error {
	s = NormalizeTicker(s)
	if len(s) == 0 {
		return fmt.Errorf("ticker symbol cannot be empty")
	}
	if len(s) > 10 {
		return fmt.Errorf("ticker symbol too long (max 10 characters)")
	}
	if !tickerPattern.MatchString(s) {
		return fmt.Errorf("invalid ticker format (use letters, numbers, dots, carets, equals signs and hyphens only)")
	}
	return nil
}

// PromptForTicker asks for a ticker on the terminal.
func PromptForTicker() (string, error) {
	var ticker string
	prompt := &survey.Input{
		Message: "Enter stock ticker:",
		Help:    "Symbol as listed by the data provider, e.g. AAPL, MSFT, 7203.T, ^GSPC",
	}
	err := survey.AskOne(prompt, &ticker, survey.WithValidator(func(val interface{}) error {
		str, ok := val.(string)
		if !ok {
			return fmt.Errorf("invalid input")
		}
		return ValidateTicker(str)
	}))
	if err != nil {
		return "", err
	}
	return NormalizeTicker(ticker), nil
}

// ReadTicker prompts interactively when in is a terminal and otherwise reads
// the ticker from the first line of in.
func ReadTicker(in io.Reader) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return PromptForTicker()
	}
	return readTickerLine(in)
}

func readTickerLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read ticker: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", fmt.Errorf("no ticker given on standard input")
	}
	if err := ValidateTicker(line); err != nil {
		return "", err
	}
	return NormalizeTicker(line), nil
}
