package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkordes/bikeshare/internal/domain"
)

const (
	greeting = "Hello! Let's explore some US bikeshare data!"

	cityPrompt  = "Enter city name: Chicago, New York City, Washington: "
	cityRetry   = "Please enter a city name."
	monthPrompt = "Enter the month you want to explore as a string. (Enter 'all' for all months): "
	monthRetry  = "Please enter a month name as a string."
	dayPrompt   = "Enter the day of the week you want to explore as a string. (Enter 'all' for all days of the week): "
	dayRetry    = "Please enter a day of the week name as a string."
)

var rule = strings.Repeat("-", 40)

// CollectFilter asks for city, month and day in turn. Each question is
// repeated, without limit, until the lowercased answer belongs to its
// allowed set. Returns domain.ErrInputClosed if input ends first.
func (c *Console) CollectFilter() (domain.Filter, error) {
	fmt.Fprintln(c.out, greeting)

	city, err := ask(c, cityPrompt, cityRetry, domain.ParseCity)
	if err != nil {
		return domain.Filter{}, err
	}
	month, err := ask(c, monthPrompt, monthRetry, domain.ParseMonth)
	if err != nil {
		return domain.Filter{}, err
	}
	day, err := ask(c, dayPrompt, dayRetry, domain.ParseDay)
	if err != nil {
		return domain.Filter{}, err
	}

	fmt.Fprintln(c.out, rule)
	return domain.Filter{City: city, Month: month, Day: day}, nil
}

// ask prompts until parse accepts the lowercased answer.
func ask[T any](c *Console, prompt, retry string, parse func(string) (T, error)) (T, error) {
	for {
		fmt.Fprint(c.out, prompt)
		line, err := c.readLine()
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(strings.ToLower(line))
		if err == nil {
			return v, nil
		}
		c.log.Debug("answer rejected", "answer", line, "error", err)
		fmt.Fprintln(c.out, retry)
	}
}

// askYes prints prompt and reports whether the answer is "yes" in any case.
func (c *Console) askYes(prompt string) (bool, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.readLine()
	if err != nil {
		return false, err
	}
	return strings.ToLower(line) == "yes", nil
}

// readLine returns the next input line without its line terminator.
// A final line lacking a newline is still returned; after that, or on an
// empty stream, it returns domain.ErrInputClosed.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("console.readLine: %w", err)
		}
		if line == "" {
			return "", domain.ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
