package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpalmerr/aimsmodel"
)

// Alert is an entry in the active-alerts model.
type Alert struct {
	Key      string
	Severity string
}

// ID keys alerts by their Key.
func (a Alert) ID() string { return a.Key }

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	alerts := aimsmodel.NewMapStore[string, Alert](
		aimsmodel.WithLogger(logger),
		aimsmodel.WithName("alerts"),
	)
	alerts.Subscribe(func(m *aimsmodel.MapStore[string, Alert]) {
		fmt.Printf("alerts changed: %d active\n", m.Len())
	})

	recent := aimsmodel.NewSequenceStore[string](
		aimsmodel.WithLogger(logger),
		aimsmodel.WithName("recent"),
	)
	recent.Subscribe(func(s *aimsmodel.SequenceStore[string]) {
		fmt.Printf("recent changed: %v\n", s.Data())
	})

	alerts.Add([]Alert{
		{Key: "disk", Severity: "warning"},
		{Key: "cpu", Severity: "critical"},
	}, false)
	alerts.RemoveID("disk") // emits
	alerts.RemoveID("disk") // already gone, no event
	alerts.SetData(nil)     // had data, emits

	recent.SetData([]string{"cpu", "disk"})
	recent.Clear()
	recent.Clear() // already empty, no event
}
