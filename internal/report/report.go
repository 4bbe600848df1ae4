// Package report turns collector results into a Snapshot and renders it.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/vitalis-app/sysinfo/internal/collector"
	"github.com/vitalis-app/sysinfo/internal/models"
	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// Output formats accepted by Render.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every format Render accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// Assemble maps collector results into a unified Snapshot. err is the
// aggregated collection error; each of its parts is recorded in Errors.
func Assemble(results map[string]interface{}, err error) models.Snapshot {
	snapshot := models.Snapshot{
		Timestamp: time.Now().UTC(),
	}

	// Hostname
	if data, ok := results[collector.NameHostname]; ok {
		if name, ok := data.(string); ok {
			snapshot.Hostname = name
		}
	}

	// OS
	if data, ok := results[collector.NameOS]; ok {
		if osInfo, ok := data.(models.OSInfo); ok {
			snapshot.OSType = osInfo.Type
			snapshot.OSRelease = osInfo.Release
		}
	}

	// CPU
	if data, ok := results[collector.NameCPU]; ok {
		if cpu, ok := data.(platform.CPUInfo); ok {
			snapshot.CPU = &cpu
		}
	}

	// Memory
	if data, ok := results[collector.NameMemory]; ok {
		if mem, ok := data.(platform.MemoryInfo); ok {
			snapshot.Memory = &mem
		}
	}

	// Disk
	if data, ok := results[collector.NameDisk]; ok {
		if disks, ok := data.([]models.DiskUsage); ok {
			snapshot.Disks = disks
		}
	}

	for _, e := range multierr.Errors(err) {
		snapshot.Errors = append(snapshot.Errors, e.Error())
	}
	sort.Strings(snapshot.Errors)

	return snapshot
}

// Render writes the snapshot to w in the given format.
func Render(w io.Writer, snapshot models.Snapshot, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snapshot); err != nil {
			return err
		}
		return enc.Close()
	case FormatText, "":
		return renderText(w, snapshot)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func renderText(w io.Writer, s models.Snapshot) error {
	label := color.New(color.Bold)
	failure := color.New(color.FgRed)
	if w != io.Writer(os.Stdout) || color.NoColor {
		label.DisableColor()
		failure.DisableColor()
	}

	field := func(name, format string, args ...interface{}) {
		if name != "" {
			name += ":"
		}
		label.Fprintf(w, "%-10s", name)
		fmt.Fprintf(w, format+"\n", args...)
	}

	if s.Hostname != "" {
		field("Hostname", "%s", s.Hostname)
	}
	if s.OSType != "" {
		field("OS", "%s %s", s.OSType, s.OSRelease)
	}
	if s.CPU != nil {
		field("CPUs", "%d", s.CPU.NumOfProcessors)
	}
	if m := s.Memory; m != nil {
		field("Memory", "%s total, %s free", kibBytes(m.Total), kibBytes(m.Free))
		if m.Avail != 0 || m.Buffers != 0 || m.Cached != 0 {
			field("", "%s available, %s buffers, %s cached",
				kibBytes(m.Avail), kibBytes(m.Buffers), kibBytes(m.Cached))
		}
		if m.SwapTotal != 0 {
			field("Swap", "%s total, %s free", kibBytes(m.SwapTotal), kibBytes(m.SwapFree))
		}
	}
	if len(s.Disks) > 0 {
		label.Fprintln(w, "Disks:")
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Path", "Type", "Size", "Used", "Free", "Use%"})
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		for _, d := range s.Disks {
			table.Append([]string{
				d.Path,
				d.Fs,
				humanize.IBytes(d.Total),
				humanize.IBytes(d.Used),
				humanize.IBytes(d.Free),
				usedPercent(d),
			})
		}
		table.Render()
	}
	for _, e := range s.Errors {
		failure.Fprintf(w, "Error: %s\n", e)
	}
	return nil
}

func usedPercent(d models.DiskUsage) string {
	if d.Total == 0 {
		return "-"
	}
	return strconv.FormatFloat(float64(d.Used)*100/float64(d.Total), 'f', 0, 64) + "%"
}

// kibBytes formats a KiB counter.
func kibBytes(kib uint64) string {
	return humanize.IBytes(kib * 1024)
}
