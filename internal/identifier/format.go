package identifier

import "strings"

// Format returns the canonical display form for the given kind. Formatting
// is purely presentational: it never changes validity and tolerates partial
// input, inserting punctuation only as far as the supplied digits reach,
// which makes it usable as an input mask.
func Format(kind Kind, raw string) string {
	switch kind {
	case CPF:
		return FormatCPF(raw)
	case CNPJ:
		return FormatCNPJ(raw)
	case CEP:
		return FormatCEP(raw)
	case AccessKey:
		return FormatAccessKey(raw)
	}
	return raw
}

// FormatCPF renders XXX.XXX.XXX-XX.
func FormatCPF(raw string) string {
	return mask(Digits(raw), 11, []maskStop{{3, "."}, {6, "."}, {9, "-"}})
}

// FormatCNPJ renders XX.XXX.XXX/XXXX-XX.
func FormatCNPJ(raw string) string {
	return mask(Digits(raw), 14, []maskStop{{2, "."}, {5, "."}, {8, "/"}, {12, "-"}})
}

// FormatCEP renders XXXXX-XXX.
func FormatCEP(raw string) string {
	return mask(Digits(raw), 8, []maskStop{{5, "-"}})
}

// FormatAccessKey renders the 44 digits in space-separated groups of four,
// the grouping printed on fiscal document mirrors (DANFE).
func FormatAccessKey(raw string) string {
	d := Digits(raw)
	if len(d) > 44 {
		d = d[:44]
	}
	var groups []string
	for i := 0; i < len(d); i += 4 {
		end := i + 4
		if end > len(d) {
			end = len(d)
		}
		groups = append(groups, d[i:end])
	}
	return strings.Join(groups, " ")
}

type maskStop struct {
	after int
	sep   string
}

// mask interleaves separators into a digit string, truncating at max digits.
func mask(digits string, max int, stops []maskStop) string {
	if len(digits) > max {
		digits = digits[:max]
	}
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		for _, s := range stops {
			if i == s.after {
				b.WriteString(s.sep)
			}
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}
