package platform

import (
	ps "github.com/shirou/gopsutil/process"
)

// GopsutilInspector lists processes through gopsutil.
type GopsutilInspector struct{}

// NewInspector returns the default process inspector for the host.
func NewInspector() Inspector {
	return GopsutilInspector{}
}

// Processes implements Inspector.
func (GopsutilInspector) Processes() ([]Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, gopsutilProcess{p})
	}
	return out, nil
}

type gopsutilProcess struct {
	p *ps.Process
}

func (g gopsutilProcess) PID() int32 {
	return g.p.Pid
}

func (g gopsutilProcess) Name() (string, error) {
	return g.p.Name()
}

func (g gopsutilProcess) ParentName() (string, error) {
	parent, err := g.p.Parent()
	if err != nil {
		return "", err
	}
	if parent == nil {
		return "", nil
	}
	return parent.Name()
}

func (g gopsutilProcess) ResidentMemory() (uint64, error) {
	info, err := g.p.MemoryInfo()
	if err != nil {
		return 0, err
	}
	if info == nil {
		return 0, nil
	}
	return info.RSS, nil
}

func (g gopsutilProcess) CPUPercent() (float64, error) {
	return g.p.CPUPercent()
}

func (g gopsutilProcess) Connections() ([]Connection, error) {
	stats, err := g.p.Connections()
	if err != nil {
		return nil, err
	}

	conns := make([]Connection, 0, len(stats))
	for _, c := range stats {
		conns = append(conns, Connection{
			RemoteIP:   c.Raddr.IP,
			RemotePort: c.Raddr.Port,
			Status:     c.Status,
		})
	}
	return conns, nil
}
