package adapter

import (
	"fmt"
	"strings"
	"sync"

	"fisco/internal/domain"
	"fisco/internal/port"
)

// DefaultMunicipalityCode is returned when a (city, state) pair is not in
// the table. The fallback is silent on purpose: a wrong-but-valid code is
// correctable downstream, whereas failing the lookup would block issuance
// on reference-data gaps. Contrast with the issuer profile, where the
// adapter fails loudly instead.
const DefaultMunicipalityCode = "3550308" // São Paulo - SP

// MunicipalityTable resolves IBGE municipality codes from (city, state)
// pairs. It is read-mostly: lookups take a shared lock, and the only
// mutation point is the explicit Register call.
type MunicipalityTable struct {
	mu     sync.RWMutex
	byName map[string]string
}

// NewMunicipalityTable builds a table from pre-loaded entries.
func NewMunicipalityTable(entries []port.MunicipalityEntry) *MunicipalityTable {
	t := &MunicipalityTable{byName: make(map[string]string, len(entries))}
	for i := range entries {
		t.byName[municipalityKey(entries[i].City, entries[i].State)] = entries[i].Code
	}
	return t
}

// Register adds one municipality at runtime. Re-registering an existing
// (city, state) pair is rejected so a typo cannot silently shadow the
// reference data.
func (t *MunicipalityTable) Register(entry port.MunicipalityEntry) error {
	key := municipalityKey(entry.City, entry.State)
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.byName[key]; exists {
		return fmt.Errorf("municipality %s/%s: %w", entry.City, entry.State, domain.ErrDuplicateEntry)
	}
	t.byName[key] = entry.Code
	return nil
}

// Lookup returns the code for a (city, state) pair and whether it was found.
func (t *MunicipalityTable) Lookup(city, state string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	code, ok := t.byName[municipalityKey(city, state)]
	return code, ok
}

// Resolve returns the code for a (city, state) pair, falling back to
// DefaultMunicipalityCode on a miss.
func (t *MunicipalityTable) Resolve(city, state string) string {
	if code, ok := t.Lookup(city, state); ok {
		return code
	}
	return DefaultMunicipalityCode
}

// Len returns the number of registered municipalities.
func (t *MunicipalityTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byName)
}

func municipalityKey(city, state string) string {
	return normalize(city) + "|" + strings.ToUpper(strings.TrimSpace(state))
}
