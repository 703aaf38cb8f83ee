package main

import (
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/ecsdemos/ecs"
)

// Report collects one run's configuration and measurements.
type Report struct {
	Duration       time.Duration
	Entities       int
	GCPauseMetrics bool

	TotalUpdates  int64
	TotalTime     time.Duration
	UpdateTime    Stats
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Stats summarizes a series of update durations.
type Stats struct {
	Min, Max, Avg time.Duration
	Samples       []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}
	var total time.Duration
	for _, d := range s.Samples {
		total += d
	}
	s.Min = slices.Min(s.Samples)
	s.Max = slices.Max(s.Samples)
	s.Avg = total / time.Duration(len(s.Samples))
}

// UpdatesPerSecond is the achieved tick rate.
func (r *Report) UpdatesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalUpdates) / r.TotalTime.Seconds()
}

const reportTemplate = `
# Camera Demo Stress Report

## Configuration
- **Duration:** {{.Duration}}
- **Extra Text Entities:** {{.Entities}}

## Updates
- **Count:** {{.TotalUpdates}} in {{.TotalTime}} ({{printf "%.0f" .UpdatesPerSecond}}/s)
- **Tick:** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}

## Systems
| System | Runs | Avg | Min | Max |
|---|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory (bytes)
| | Start | End | Delta |
|---|---|---|---|
| Heap Alloc | {{.MemStatsStart.HeapAlloc}} | {{.MemStatsEnd.HeapAlloc}} | {{delta .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} |
| Total Alloc | {{.MemStatsStart.TotalAlloc}} | {{.MemStatsEnd.TotalAlloc}} | {{delta .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} |
| Sys | {{.MemStatsStart.Sys}} | {{.MemStatsEnd.Sys}} | {{delta .MemStatsEnd.Sys .MemStatsStart.Sys}} |
| GC Cycles | {{.MemStatsStart.NumGC}} | {{.MemStatsEnd.NumGC}} | {{cycles .MemStatsEnd.NumGC .MemStatsStart.NumGC}} |
{{if .GCPauseMetrics}}
## GC Pause
- **Total:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

var reportFuncs = template.FuncMap{
	"delta":  func(end, start uint64) int64 { return int64(end) - int64(start) },
	"cycles": func(end, start uint32) uint32 { return end - start },
	"ns":     func(ns uint64) time.Duration { return time.Duration(ns) },
}

// Generate writes the report as markdown.
func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
