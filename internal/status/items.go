package status

import (
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/process"
)

type ProcessRSSItem struct {
	*BaseItem
	pid int32
}

func NewProcessRSSItem() *ProcessRSSItem {
	return &ProcessRSSItem{
		BaseItem: NewBaseItem("process_rss", "Memory", "MB", 1),
		pid:      int32(os.Getpid()),
	}
}

func (p *ProcessRSSItem) Update() error {
	proc, err := process.NewProcess(p.pid)
	if err != nil {
		p.SetAvailable(false)
		return err
	}
	info, err := proc.MemoryInfo()
	if err != nil {
		p.SetAvailable(false)
		return err
	}
	p.SetValue(float64(info.RSS) / (1024 * 1024))
	return nil
}

type HostUptimeItem struct {
	*BaseItem
}

func NewHostUptimeItem() *HostUptimeItem {
	return &HostUptimeItem{BaseItem: NewBaseItem("host_uptime", "Uptime", "h", 1)}
}

func (h *HostUptimeItem) Update() error {
	secs, err := host.Uptime()
	if err != nil {
		h.SetAvailable(false)
		return err
	}
	h.SetValue(float64(secs) / 3600)
	return nil
}

type LoadAvgItem struct {
	*BaseItem
}

func NewLoadAvgItem() *LoadAvgItem {
	return &LoadAvgItem{BaseItem: NewBaseItem("load_avg", "Load Avg", "", 2)}
}

func (l *LoadAvgItem) Update() error {
	avg, err := load.Avg()
	if err != nil {
		l.SetAvailable(false)
		return err
	}
	l.SetValue(avg.Load1)
	return nil
}

// Counter counts rendered previews. It is shared between the server and
// the preview_count item.
type Counter struct {
	n atomic.Int64
}

func (c *Counter) Inc()        { c.n.Add(1) }
func (c *Counter) Load() int64 { return c.n.Load() }

type PreviewCountItem struct {
	*BaseItem
	counter *Counter
}

func NewPreviewCountItem(counter *Counter) *PreviewCountItem {
	return &PreviewCountItem{
		BaseItem: NewBaseItem("preview_count", "Previews", "", 0),
		counter:  counter,
	}
}

func (p *PreviewCountItem) Update() error {
	p.SetValue(p.counter.Load())
	return nil
}

type CurrentTimeItem struct {
	*BaseItem
	now func() time.Time
}

func NewCurrentTimeItem(now func() time.Time) *CurrentTimeItem {
	if now == nil {
		now = time.Now
	}
	return &CurrentTimeItem{
		BaseItem: NewBaseItem("current_time", "Time", "", 0),
		now:      now,
	}
}

func (c *CurrentTimeItem) Update() error {
	c.SetValue(c.now().Format("2006-01-02 15:04:05"))
	return nil
}
