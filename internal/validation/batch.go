package validation

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	errs "github.com/willowhq/willowcheck/internal/errors"
	"github.com/willowhq/willowcheck/internal/rules"
)

// BatchOption configures a BatchValidator.
type BatchOption func(*BatchValidator)

// WithWorkers sets how many records are validated concurrently. Values
// below 2 keep the batch sequential.
func WithWorkers(n int) BatchOption {
	return func(b *BatchValidator) {
		if n > 1 {
			b.workers = n
		}
	}
}

// BatchValidator applies the scenario validator across a dataset and
// aggregates the outcomes. Records are independent, so the per-record loop
// may fan out across workers; aggregation always happens in a single
// goroutine after all results are collected.
type BatchValidator struct {
	scenarios *ScenarioValidator
	workers   int
}

// NewBatchValidator builds a batch validator from the given ruleset.
func NewBatchValidator(rs *rules.Ruleset, opts ...BatchOption) *BatchValidator {
	b := &BatchValidator{scenarios: NewScenarioValidator(rs), workers: 1}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type recordOutcome struct {
	id   string
	errs []string
}

// ValidateDataset validates every record and aggregates the results. No
// record failure short-circuits the batch: a record that is not an object,
// or whose validation panics, is recorded as a scenario-level error entry
// and the loop continues.
func (b *BatchValidator) ValidateDataset(records []any) BatchSummary {
	outcomes := make([]recordOutcome, len(records))

	if b.workers > 1 {
		var g errgroup.Group
		g.SetLimit(b.workers)
		for i := range records {
			i := i
			g.Go(func() error {
				outcomes[i] = b.validateOne(i, records[i])
				return nil
			})
		}
		g.Wait()
	} else {
		for i := range records {
			outcomes[i] = b.validateOne(i, records[i])
		}
	}

	summary := BatchSummary{
		Valid:          true,
		ScenarioErrors: make(map[string][]string),
	}
	for _, outcome := range outcomes {
		summary.ScenariosProcessed++
		if len(outcome.errs) == 0 {
			continue
		}
		summary.Valid = false
		summary.ScenariosWithErrors++
		summary.TotalErrors += len(outcome.errs)
		summary.ScenarioErrors[outcome.id] = outcome.errs
	}
	return summary
}

// validateOne validates a single record. A panic inside the validators is
// recovered here so one malformed record cannot abort the batch.
func (b *BatchValidator) validateOne(index int, rec any) (outcome recordOutcome) {
	outcome.id = fmt.Sprintf("scenario_%d", index)
	defer func() {
		if r := recover(); r != nil {
			outcome.errs = append(outcome.errs, fmt.Sprintf("internal validation failure: %v", r))
		}
	}()

	record, ok := rec.(map[string]any)
	if !ok {
		outcome.errs = []string{"scenario is not an object"}
		return outcome
	}
	if id := stringField(record, "scenario_id"); id != "" {
		outcome.id = id
	}
	report := b.scenarios.Validate(record)
	outcome.errs = report.AllErrors()
	return outcome
}

// ValidateFile loads a JSON file holding one scenario object or an array
// of scenarios and validates it. Missing files and malformed JSON are the
// two distinct input error kinds; nothing is partially processed on either.
func (b *BatchValidator) ValidateFile(path string) (BatchSummary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return BatchSummary{}, errs.NewInputError(errs.ErrFileNotFound,
				fmt.Sprintf("input file not found: %s", path),
				"check the --input path")
		}
		return BatchSummary{}, errs.NewInputError(err, fmt.Sprintf("reading %s: %v", path, err))
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return BatchSummary{}, errs.NewParseError(errs.ErrMalformedJSON,
			fmt.Sprintf("%s is not valid JSON: %v", path, err),
			"fix the JSON syntax before re-running validation")
	}

	switch v := doc.(type) {
	case []any:
		return b.ValidateDataset(v), nil
	case map[string]any:
		return b.ValidateDataset([]any{v}), nil
	default:
		return BatchSummary{}, errs.NewInputError(nil,
			fmt.Sprintf("%s: top-level JSON must be a scenario object or an array of scenarios", path))
	}
}
