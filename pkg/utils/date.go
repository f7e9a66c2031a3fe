package utils

import (
	"math"
	"regexp"
	"sort"
	"time"
)

const (
	dateLayout             = "2006-01-02"
	compactDateLayout      = "20060102"
	filenameTimestampStamp = "20060102-150405"
)

var fileDateRangePattern = regexp.MustCompile(`(\d{8})-(\d{8})`)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// FormatDate formata uma data como yyyy-mm-dd
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DaysBetween retorna a quantidade de dias inteiros entre duas datas
func DaysBetween(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Hours() / 24))
}

// ParseDateRangeFromName extrai o período de nomes como bulk-{seller}-{yyyymmdd}-{yyyymmdd}-{ts}.xlsx
func ParseDateRangeFromName(name string) (start, end time.Time, ok bool) {
	match := fileDateRangePattern.FindStringSubmatch(name)
	if match == nil {
		return time.Time{}, time.Time{}, false
	}

	start, err := time.Parse(compactDateLayout, match[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(compactDateLayout, match[2])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// WidestDateRange retorna o maior período encontrado entre os nomes informados
func WidestDateRange(names []string) (start, end time.Time, ok bool) {
	var starts, ends []time.Time
	for _, name := range names {
		s, e, found := ParseDateRangeFromName(name)
		if !found {
			continue
		}
		starts = append(starts, s)
		ends = append(ends, e)
	}
	if len(starts) == 0 {
		return time.Time{}, time.Time{}, false
	}

	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	sort.Slice(ends, func(i, j int) bool { return ends[i].Before(ends[j]) })
	return starts[0], ends[len(ends)-1], true
}

// TimestampForFilename gera o carimbo yyyymmdd-hhmmss usado nos arquivos de saída
func TimestampForFilename(t time.Time) string {
	return t.Format(filenameTimestampStamp)
}
