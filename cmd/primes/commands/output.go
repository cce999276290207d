package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatList = "list"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type writer func(w io.Writer, primes []int) error

var writers = map[string]writer{
	FormatList: writeList,
	FormatJSON: writeJSON,
	FormatYAML: writeYAML,
}

// writePrimes prints primes in the named format. Unknown formats are
// rejected by Config.Validate before this is reached.
func writePrimes(w io.Writer, format string, primes []int) error {
	wr, ok := writers[format]
	if !ok {
		return fmt.Errorf("invalid format %q", format)
	}
	return wr(w, primes)
}

// formatList renders primes as a bracketed, comma separated list, e.g.
// "[2, 3, 5, 7]".
func formatList(primes []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range primes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte(']')
	return sb.String()
}

func writeList(w io.Writer, primes []int) error {
	_, err := fmt.Fprintln(w, formatList(primes))
	return err
}

func writeJSON(w io.Writer, primes []int) error {
	return json.NewEncoder(w).Encode(primes)
}

func writeYAML(w io.Writer, primes []int) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(primes); err != nil {
		return err
	}
	return enc.Close()
}
