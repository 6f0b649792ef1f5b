// Package genvalue expands generated-value templates in assignment text.
//
// Values use text/template syntax with a small function set: {{uuid}} for
// a random UUIDv4, {{now}} or {{rfc3339}} for the current time,
// {{timestamp}} for Unix seconds, plus string and random helpers.
package genvalue

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
)

var nowFunc = time.Now

// SetNowForTest overrides the clock source and returns a restore function.
func SetNowForTest(fn func() time.Time) func() {
	previous := nowFunc
	nowFunc = fn
	return func() {
		nowFunc = previous
	}
}

// FuncMap returns the functions available to generated-value templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"uuidv4": generateUUIDv4,
		"uuid":   generateUUIDv4, // Alias for uuidv4

		"now":       timeNow,
		"timestamp": timeUnix,
		"iso8601":   timeISO8601,
		"rfc3339":   timeRFC3339,

		"upper": strings.ToUpper,
		"lower": strings.ToLower,
		"trim":  strings.TrimSpace,

		"randomInt":    randomInt,
		"randomString": randomString,
	}
}

func generateUUIDv4() string {
	return uuid.New().String()
}

func timeNow() string {
	return nowFunc().Format(time.RFC3339)
}

func timeUnix() string {
	return strconv.FormatInt(nowFunc().Unix(), 10)
}

func timeISO8601() string {
	return nowFunc().Format("2006-01-02T15:04:05Z07:00")
}

func timeRFC3339() string {
	return nowFunc().Format(time.RFC3339)
}

// randomInt swaps parameters if min > max.
func randomInt(min, max int) int {
	if min > max {
		min, max = max, min
	}

	if min == max {
		return min
	}

	return rand.IntN(max-min+1) + min
}

func randomString(length int) string {
	if length <= 0 {
		return ""
	}

	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	buf := make([]byte, length)
	for i := range buf {
		buf[i] = charset[rand.IntN(len(charset))]
	}

	return string(buf)
}

// Expand runs text through the generated-value template set.
func Expand(text string) (string, error) {
	if text == "" {
		return "", nil
	}

	tmpl, err := template.New("").Option("missingkey=error").Funcs(FuncMap()).Parse(text)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", err
	}

	return buf.String(), nil
}
