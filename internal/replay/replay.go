package replay

import (
	"fmt"
	"log/slog"

	"github.com/jpalmerr/aimsmodel"
	"github.com/jpalmerr/aimsmodel/config"
)

// StepResult records the outcome of applying a single step.
type StepResult struct {
	// Index is the step's position in the script.
	Index int

	// Op is the step's operation.
	Op string

	// Events is the number of change events the step emitted.
	Events int

	// Size is the number of entries in the model after the step.
	Size int
}

// Result is the outcome of a replay run.
type Result struct {
	// Store is the model kind the script ran against.
	Store string

	// Steps holds one result per script step, in order.
	Steps []StepResult

	// Events is the total number of change events across all steps.
	Events int

	// Final is the model data after the last step: a map[string]config.Record
	// for map stores and a []config.Record for sequence stores.
	Final any
}

// Run applies script to a new model of the script's store kind.
//
// If logger is nil, [slog.Default] is used. The model logs every change event
// at Debug level through logger.
func Run(script *config.Script, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch script.Store {
	case config.StoreMap, "":
		return runMap(script, logger)
	case config.StoreSequence:
		return runSequence(script, logger)
	default:
		return nil, fmt.Errorf("unknown store %q", script.Store)
	}
}

func runMap(script *config.Script, logger *slog.Logger) (*Result, error) {
	store := aimsmodel.NewMapStore[string, config.Record](
		aimsmodel.WithLogger(logger),
		aimsmodel.WithName("replay"),
	)

	events := 0
	store.Subscribe(func(*aimsmodel.MapStore[string, config.Record]) {
		events++
	})

	res := &Result{Store: config.StoreMap}
	for i, step := range script.Steps {
		before := events

		switch step.Op {
		case config.OpAdd:
			if step.Mapping != nil {
				store.AddMap(step.Mapping, step.Force)
			} else {
				store.Add(step.Entries, step.Force)
			}
		case config.OpRemove:
			if step.ID != nil {
				store.RemoveID(*step.ID)
			} else {
				store.Remove(step.Entries)
			}
		case config.OpSet:
			if step.Mapping != nil {
				store.SetDataMap(step.Mapping)
			} else {
				store.SetData(step.Entries)
			}
		case config.OpClear:
			store.Clear()
		default:
			return nil, fmt.Errorf("steps[%d]: unknown op %q", i, step.Op)
		}

		res.Steps = append(res.Steps, record(logger, i, step.Op, events-before, store.Len()))
	}

	res.Events = events
	res.Final = store.Data()
	return res, nil
}

func runSequence(script *config.Script, logger *slog.Logger) (*Result, error) {
	store := aimsmodel.NewSequenceStore[config.Record](
		aimsmodel.WithLogger(logger),
		aimsmodel.WithName("replay"),
	)

	events := 0
	store.Subscribe(func(*aimsmodel.SequenceStore[config.Record]) {
		events++
	})

	res := &Result{Store: config.StoreSequence}
	for i, step := range script.Steps {
		before := events

		switch step.Op {
		case config.OpSet:
			store.SetData(step.Entries)
		case config.OpClear:
			store.Clear()
		default:
			return nil, fmt.Errorf("steps[%d]: op %q is not supported by a sequence store", i, step.Op)
		}

		res.Steps = append(res.Steps, record(logger, i, step.Op, events-before, store.Len()))
	}

	res.Events = events
	res.Final = store.Data()
	return res, nil
}

// record logs and returns the result of step i.
func record(logger *slog.Logger, i int, op string, events, size int) StepResult {
	logger.Debug("step applied",
		"step", i,
		"op", op,
		"events", events,
		"size", size,
	)
	return StepResult{Index: i, Op: op, Events: events, Size: size}
}
