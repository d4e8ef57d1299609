package apps

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/Gaurav-Gosain/tuidesk/internal/config"
)

// HostInfo is the summary shown by the terminal's neofetch.
type HostInfo struct {
	Hostname string
	OS       string
	Platform string
	Kernel   string
	Uptime   time.Duration
	CPUs     int
	MemUsed  uint64
	MemTotal uint64
}

// Lines formats the summary as label/value rows.
func (h HostInfo) Lines() [][2]string {
	return [][2]string{
		{"Host", h.Hostname},
		{"OS", h.Platform},
		{"Kernel", h.Kernel},
		{"Uptime", h.Uptime.Round(time.Minute).String()},
		{"CPUs", fmt.Sprint(h.CPUs)},
		{"Memory", fmt.Sprintf("%d MiB / %d MiB", h.MemUsed>>20, h.MemTotal>>20)},
	}
}

// HostProbe caches host lookups, which are too slow to run per frame.
type HostProbe struct {
	mu      sync.Mutex
	ttl     time.Duration
	fetched time.Time
	info    HostInfo
	err     error

	// collect is swapped in tests.
	collect func(ctx context.Context) (HostInfo, error)
}

// NewHostProbe returns a probe that refreshes at most once per ttl.
func NewHostProbe(ttl time.Duration) *HostProbe {
	if ttl <= 0 {
		ttl = config.HostInfoTTL
	}
	return &HostProbe{ttl: ttl, collect: collectHost}
}

// Info returns the cached summary, refreshing it when stale.
func (p *HostProbe) Info() (HostInfo, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.fetched.IsZero() && time.Since(p.fetched) < p.ttl {
		return p.info, p.err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	p.info, p.err = p.collect(ctx)
	p.fetched = time.Now()
	return p.info, p.err
}

// collectHost is the gopsutil collector new probes use.
var collectHost = collectHostInfo

func collectHostInfo(ctx context.Context) (HostInfo, error) {
	info := HostInfo{OS: runtime.GOOS, CPUs: runtime.NumCPU()}

	h, err := host.InfoWithContext(ctx)
	if err != nil {
		return info, fmt.Errorf("host info: %w", err)
	}
	info.Hostname = h.Hostname
	info.Platform = fmt.Sprintf("%s %s", h.Platform, h.PlatformVersion)
	info.Kernel = h.KernelVersion
	info.Uptime = time.Duration(h.Uptime) * time.Second

	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		info.CPUs = n
	}
	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemUsed, info.MemTotal = vm.Used, vm.Total
	}
	return info, nil
}
