package calendar

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

// HolidaySet holds dates to exclude from workday resolution on top of the
// weekend rule. Keys are formatted as YYYY-MM-DD.
type HolidaySet map[string]struct{}

// Contains reports whether the set holds the calendar date of the given time.
func (s HolidaySet) Contains(date time.Time) bool {
	if s == nil {
		return false
	}
	_, ok := s[date.Format("2006-01-02")]
	return ok
}

// LoadHolidays loads a holiday list from a local text file, one YYYY-MM-DD
// date per line. Blank lines and lines starting with '#' are ignored;
// unparseable lines are logged and skipped.
func LoadHolidays(filePath string, logger *zap.Logger) (HolidaySet, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open holidays file: %w", err)
	}
	defer file.Close()

	holidays := make(HolidaySet)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		date, err := time.Parse("2006-01-02", line)
		if err != nil {
			logger.Warn("Failed to parse holiday date", zap.String("line", line), zap.Error(err))
			continue
		}

		holidays[date.Format("2006-01-02")] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays file: %w", err)
	}

	logger.Info("Holiday calendar loaded",
		zap.String("file", filePath),
		zap.Int("holidays", len(holidays)))

	return holidays, nil
}
