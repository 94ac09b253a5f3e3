// Package adapter translates human-entered form values into the coded
// representation the fiscal document layouts require, resolving default
// lookups and assembling the final validated payload.
package adapter

import "strings"

// Coded defaults applied when an entered categorical value is unknown. The
// fallback is deliberate and documented: free-form entry must degrade to a
// safe code, not fail the whole document.
const (
	DefaultOperationCode     = 1 // outgoing (saída)
	DefaultPurposeCode       = 1 // regular issuance
	DefaultPresenceCode      = 9 // other, not covered by the listed scenarios
	DefaultFinalConsumerCode = 0 // not a final consumer
)

// operationCodes maps the entered operation direction to its layout code.
var operationCodes = map[string]int{
	"entrada": 0, // incoming
	"saida":   1, // outgoing
}

// purposeCodes maps the entered document purpose to its layout code.
var purposeCodes = map[string]int{
	"normal":       1,
	"complementar": 2,
	"ajuste":       3,
	"devolucao":    4,
}

// presenceCodes maps the buyer-presence scenario to its layout code.
var presenceCodes = map[string]int{
	"nao_aplica":        0,
	"presencial":        1,
	"internet":          2,
	"telefone":          3,
	"entrega_domicilio": 4,
	"outros":            9,
}

// finalConsumerCodes maps the final-consumer flag to its layout code.
var finalConsumerCodes = map[string]int{
	"nao": 0,
	"sim": 1,
}

func codeOrDefault(table map[string]int, entered string, def int) int {
	if code, ok := table[normalize(entered)]; ok {
		return code
	}
	return def
}

// OperationCode resolves the operation direction code, defaulting to saída.
func OperationCode(entered string) int {
	return codeOrDefault(operationCodes, entered, DefaultOperationCode)
}

// PurposeCode resolves the document purpose code, defaulting to regular.
func PurposeCode(entered string) int {
	return codeOrDefault(purposeCodes, entered, DefaultPurposeCode)
}

// PresenceCode resolves the buyer-presence code, defaulting to "other".
func PresenceCode(entered string) int {
	return codeOrDefault(presenceCodes, entered, DefaultPresenceCode)
}

// FinalConsumerCode resolves the final-consumer flag code, defaulting to 0.
func FinalConsumerCode(entered string) int {
	return codeOrDefault(finalConsumerCodes, entered, DefaultFinalConsumerCode)
}

// normalize lowercases and trims an entered value and squashes separators so
// "Entrega Domicílio"-style input still hits the table.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "_", "-", "_", "á", "a", "é", "e", "í", "i", "ó", "o", "ã", "a", "ç", "c").Replace(s)
	return s
}
