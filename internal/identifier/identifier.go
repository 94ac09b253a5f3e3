// Package identifier implements structural and check-digit validation for
// the taxpayer and document identifiers carried on fiscal documents, plus
// their canonical display formatting.
package identifier

import (
	"fmt"
	"strings"
)

// Kind tags the identifier families this package understands.
type Kind string

const (
	CPF       Kind = "cpf"        // person tax ID, 11 digits, two check digits
	CNPJ      Kind = "cnpj"       // organization tax ID, 14 digits, two check digits
	CEP       Kind = "cep"        // postal code, 8 digits, no check digit
	AccessKey Kind = "access_key" // document access key, 44 digits, one check digit
)

// Valid dispatches to the validator for the given kind. It panics on an
// unknown kind: that is a programming error, not bad user input.
func Valid(kind Kind, raw string) bool {
	switch kind {
	case CPF:
		return ValidCPF(raw)
	case CNPJ:
		return ValidCNPJ(raw)
	case CEP:
		return ValidCEP(raw)
	case AccessKey:
		return ValidAccessKey(raw)
	}
	panic(fmt.Sprintf("identifier: unknown kind %q", kind))
}

// Digits strips every non-digit rune from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// allSame reports whether every byte of a non-empty digit string is equal.
// Sequences like 00000000000 pass the check-digit math but are not issuable.
func allSame(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}

// ValidCNPJ validates a 14-digit organization tax ID. Non-digits are
// stripped first; wrong length and repeated-digit sequences are rejected
// before the two weighted mod-11 check digits are verified.
func ValidCNPJ(raw string) bool {
	d := Digits(raw)
	if len(d) != 14 || allSame(d) {
		return false
	}
	w1 := []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	if cnpjCheckDigit(d[:12], w1) != int(d[12]-'0') {
		return false
	}
	w2 := []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	return cnpjCheckDigit(d[:13], w2) == int(d[13]-'0')
}

func cnpjCheckDigit(digits string, weights []int) int {
	if len(digits) != len(weights) {
		return -1
	}
	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}

// ValidCPF validates an 11-digit person tax ID using the (sum*10) mod 11
// rule, with 10 and 11 mapped to 0, for each of the two check digits.
func ValidCPF(raw string) bool {
	d := Digits(raw)
	if len(d) != 11 || allSame(d) {
		return false
	}
	if cpfCheckDigit(d, 9) != int(d[9]-'0') {
		return false
	}
	return cpfCheckDigit(d, 10) == int(d[10]-'0')
}

// cpfCheckDigit computes the check digit verified at position pos (9 or 10),
// weighting digit i by (pos+1-i).
func cpfCheckDigit(digits string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(digits[i]-'0') * (pos + 1 - i)
	}
	dv := (sum * 10) % 11
	if dv >= 10 {
		return 0
	}
	return dv
}

// ValidCEP validates an 8-digit postal code. There is no check digit.
func ValidCEP(raw string) bool {
	return len(Digits(raw)) == 8
}

// ValidAccessKey validates a 44-digit document access key: the final digit
// must equal the mod-11 check digit over the first 43.
func ValidAccessKey(raw string) bool {
	d := Digits(raw)
	if len(d) != 44 {
		return false
	}
	return CheckDigitAccessKey(d[:43]) == int(d[43]-'0')
}

// CheckDigitAccessKey computes the access-key check digit over a 43-digit
// prefix, with weights cycling 2..9 from the rightmost digit leftwards.
// It returns -1 when the prefix is not exactly 43 digits.
func CheckDigitAccessKey(first43 string) int {
	d := Digits(first43)
	if len(d) != 43 {
		return -1
	}
	sum := 0
	weight := 2
	for i := len(d) - 1; i >= 0; i-- {
		sum += int(d[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}
	if sum%11 < 2 {
		return 0
	}
	return 11 - sum%11
}
