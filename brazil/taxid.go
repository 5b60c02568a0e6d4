// Package brazil validates Brazilian taxpayer identification numbers.
//
// It covers CPF (Cadastro de Pessoas Fisicas, individuals, 11 digits) and
// CNPJ (Cadastro Nacional da Pessoa Juridica, companies, 14 digits). Input
// may be plain or formatted with dots, slashes and hyphens; everything that
// is not an ASCII digit is stripped before validation. The last two digits
// of both document types are check digits computed with a weighted modulo-11
// sum, and validation recomputes and compares them.
//
// All functions are pure and safe for concurrent use.
package brazil

import (
	"errors"
	"regexp"
	"strconv"
)

// DocumentKind identifies which Brazilian tax document a digit string
// represents.
type DocumentKind int

const (
	// CPF is the individual taxpayer registry number, 11 digits.
	CPF DocumentKind = iota
	// CNPJ is the company taxpayer registry number, 14 digits.
	CNPJ
)

// String returns the common abbreviation for the document kind.
func (k DocumentKind) String() string {
	switch k {
	case CPF:
		return "CPF"
	case CNPJ:
		return "CNPJ"
	default:
		return "unknown"
	}
}

// Validation failures. Callers discriminate with errors.Is.
var (
	// ErrInvalidInput is returned when the input contains no digits at all.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidLength is returned when the digit count matches neither a
	// CPF (11) nor a CNPJ (14).
	ErrInvalidLength = errors.New("invalid length")

	// ErrAllDigitsEqual is returned for degenerate sequences such as
	// "00000000000", which are well-formed but never issued.
	ErrAllDigitsEqual = errors.New("all digits are equal")

	// ErrInvalidChecksum is returned when the two trailing check digits do
	// not match the recomputed values.
	ErrInvalidChecksum = errors.New("invalid checksum")
)

const (
	cpfLength  = 11
	cnpjLength = 14

	validationModulus = 11
)

// Multiplier weights for the second (final) check digit; the first check
// digit uses the same table with its leading entry dropped.
var (
	cpfWeights  = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

var nonDigits = regexp.MustCompile(`\D`)

// Sanitize strips every non-digit character from value, preserving the
// order of the remaining ASCII digits. Sanitizing an already sanitized
// string is a no-op.
func Sanitize(value string) string {
	return nonDigits.ReplaceAllString(value, "")
}

// ValidateTaxID reports whether value is a valid CPF or CNPJ. The document
// kind is determined by the digit count after sanitization: 11 digits are
// validated as a CPF, 14 as a CNPJ, anything else fails with
// ErrInvalidLength. A nil return means the document is valid.
func ValidateTaxID(value string) error {
	sanitized := Sanitize(value)
	if sanitized == "" {
		return ErrInvalidInput
	}

	switch len(sanitized) {
	case cpfLength:
		return validate(sanitized, cpfWeights)
	case cnpjLength:
		return validate(sanitized, cnpjWeights)
	default:
		return ErrInvalidLength
	}
}

// IsValidTaxID is a boolean convenience wrapper around ValidateTaxID.
func IsValidTaxID(value string) bool {
	return ValidateTaxID(value) == nil
}

// ValidateCPF validates value as a CPF. A 14-digit CNPJ fails with
// ErrInvalidLength even when it would be a valid CNPJ.
func ValidateCPF(value string) error {
	sanitized := Sanitize(value)
	if sanitized == "" {
		return ErrInvalidInput
	}
	if len(sanitized) != cpfLength {
		return ErrInvalidLength
	}
	return validate(sanitized, cpfWeights)
}

// ValidateCNPJ validates value as a CNPJ. An 11-digit CPF fails with
// ErrInvalidLength even when it would be a valid CPF.
func ValidateCNPJ(value string) error {
	sanitized := Sanitize(value)
	if sanitized == "" {
		return ErrInvalidInput
	}
	if len(sanitized) != cnpjLength {
		return ErrInvalidLength
	}
	return validate(sanitized, cnpjWeights)
}

// KindOf classifies value by its sanitized digit count without checking the
// check digits.
func KindOf(value string) (DocumentKind, error) {
	sanitized := Sanitize(value)
	if sanitized == "" {
		return 0, ErrInvalidInput
	}

	switch len(sanitized) {
	case cpfLength:
		return CPF, nil
	case cnpjLength:
		return CNPJ, nil
	default:
		return 0, ErrInvalidLength
	}
}

// validate checks a sanitized digit string whose length matches
// len(weights)+1 against the degenerate-sequence rule and the check digits.
func validate(digits string, weights []int) error {
	if allDigitsEqual(digits) {
		return ErrAllDigitsEqual
	}
	if !checkDigitsMatch(digits, weights) {
		return ErrInvalidChecksum
	}
	return nil
}

// allDigitsEqual reports whether every byte in s equals the first one.
func allDigitsEqual(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// checkDigitsMatch recomputes both check digits and compares them against
// the trailing two characters of digits. The first check digit covers the
// base digits with the leading weight dropped; the second covers the base
// digits plus the first check digit with the full weight table.
func checkDigitsMatch(digits string, weights []int) bool {
	n := len(digits)
	first := checkDigit(digits[:n-2], weights[1:])
	second := checkDigit(digits[:n-1], weights)
	return digits[n-2:] == strconv.Itoa(first)+strconv.Itoa(second)
}

// checkDigit computes one check digit: the weighted sum of digits modulo
// 11, mapped to 0 when the remainder is below 2 and to 11-remainder
// otherwise.
func checkDigit(digits string, weights []int) int {
	// Lengths are derived together by the callers; a mismatch here is a
	// bug, not bad input.
	if len(digits) != len(weights) {
		panic("brazil: digit count does not match weight count")
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		sum += int(digits[i]-'0') * weights[i]
	}

	remainder := sum % validationModulus
	if remainder < 2 {
		return 0
	}
	return validationModulus - remainder
}
