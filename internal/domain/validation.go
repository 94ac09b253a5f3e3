package domain

// ValidationResult is the outcome of one validation pass. It is built once
// via a Report and never mutated afterwards: validators are pure functions
// from input to result, which keeps them trivially safe to run in parallel.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Report accumulates errors and warnings during a single validation pass.
// It is not safe for concurrent use; each pass owns its own Report.
type Report struct {
	errors   []string
	warnings []string
}

// NewReport returns an empty accumulator for one validation pass.
func NewReport() *Report {
	return &Report{}
}

// Error appends a blocking error.
func (r *Report) Error(msg string) *Report {
	r.errors = append(r.errors, msg)
	return r
}

// Warning appends an advisory that does not block submission.
func (r *Report) Warning(msg string) *Report {
	r.warnings = append(r.warnings, msg)
	return r
}

// Merge folds another result's findings into this report.
func (r *Report) Merge(other ValidationResult) *Report {
	r.errors = append(r.errors, other.Errors...)
	r.warnings = append(r.warnings, other.Warnings...)
	return r
}

// Result seals the report into an immutable ValidationResult. The slices are
// copied so later appends to the report cannot alias the sealed value.
func (r *Report) Result() ValidationResult {
	errs := make([]string, len(r.errors))
	copy(errs, r.errors)
	warns := make([]string, len(r.warnings))
	copy(warns, r.warnings)
	return ValidationResult{
		Valid:    len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}
