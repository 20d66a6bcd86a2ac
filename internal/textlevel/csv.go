/*
File    : t/internal/textlevel/csv.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package textlevel

import "strings"

// SplitDelim splits s on the literal delim, as S<delim> does. When csv
// is true and delim is a single comma, fields may be double-quoted with
// "" escaping, per the `-c` flag's CSV mode.
func SplitDelim(s, delim string, csv bool) []string {
	if csv && delim == "," {
		return splitCSVRow(s)
	}
	return strings.Split(s, delim)
}

// JoinFields joins fields with delim, as J<delim> does. When csv is
// true and delim is a single comma, any field containing the delimiter,
// a double quote, or a newline is quoted and its quotes doubled.
func JoinFields(fields []string, delim string, csv bool) string {
	if csv && delim == "," {
		return joinCSVRow(fields)
	}
	return strings.Join(fields, delim)
}

func splitCSVRow(s string) []string {
	var fields []string
	var cur strings.Builder
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		if runes[i] == '"' {
			i++
			for i < len(runes) {
				if runes[i] == '"' {
					if i+1 < len(runes) && runes[i+1] == '"' {
						cur.WriteRune('"')
						i += 2
						continue
					}
					i++
					break
				}
				cur.WriteRune(runes[i])
				i++
			}
			continue
		}
		if runes[i] == ',' {
			fields = append(fields, cur.String())
			cur.Reset()
			i++
			continue
		}
		cur.WriteRune(runes[i])
		i++
	}
	fields = append(fields, cur.String())
	return fields
}

func joinCSVRow(fields []string) string {
	out := make([]string, len(fields))
	for i, f := range fields {
		if strings.ContainsAny(f, ",\"\n") {
			out[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
		} else {
			out[i] = f
		}
	}
	return strings.Join(out, ",")
}
