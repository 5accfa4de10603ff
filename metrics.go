package qsim

// Metrics counts what a CircuitProgram has done to its registers.
type Metrics struct {
	GatesApplied   map[GateKind]int
	Measurements   int
	Resets         int
	Reallocations  int
	LastMeasureAll []int
}

func newMetrics() *Metrics {
	return &Metrics{
		GatesApplied: make(map[GateKind]int),
	}
}

func (m *Metrics) recordGate(kind GateKind) {
	m.GatesApplied[kind]++
	if kind == Measure {
		m.Measurements++
	}
}

func (m *Metrics) recordMeasureAll(outcomes []int) {
	m.Measurements += len(outcomes)
	m.LastMeasureAll = append(m.LastMeasureAll[:0], outcomes...)
}

// TotalGates sums the applied gates over every kind.
func (m *Metrics) TotalGates() int {
	total := 0
	for _, count := range m.GatesApplied {
		total += count
	}
	return total
}

func (m *Metrics) ExportMetrics() map[string]any {
	gates := make(map[string]int, len(m.GatesApplied))
	for kind, count := range m.GatesApplied {
		gates[kind.String()] = count
	}

	last := make([]int, len(m.LastMeasureAll))
	copy(last, m.LastMeasureAll)

	return map[string]any{
		"gates_applied":    gates,
		"total_gates":      m.TotalGates(),
		"measurements":     m.Measurements,
		"resets":           m.Resets,
		"reallocations":    m.Reallocations,
		"last_measure_all": last,
	}
}
