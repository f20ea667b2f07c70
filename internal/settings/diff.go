package settings

import (
	"fmt"
	"strconv"

	"github.com/shytext/shytext/internal/backend"
)

// Change is one human-readable field difference. Field is the display
// label; Old and New are already rendered.
type Change struct {
	Field string
	Old   string
	New   string
}

// ChangeSet is an ordered list of changes, used only for notification
// text and never persisted.
type ChangeSet []Change

// diffLocked compares draft against committed in the fixed field order
// hotkey, language, auto_copy, show_notifications, use_gpu, gpu_device.
// Callers hold s.mu.
func (s *Store) diffLocked() ChangeSet {
	var cs ChangeSet
	c, d := s.committed, s.draft

	if c.Hotkey != d.Hotkey {
		cs = append(cs, Change{"Hotkey", strconv.Quote(c.Hotkey), strconv.Quote(d.Hotkey)})
	}
	if c.Language != d.Language {
		cs = append(cs, Change{"Language", s.languageName(c.Language), s.languageName(d.Language)})
	}
	if c.AutoCopy != d.AutoCopy {
		cs = append(cs, Change{"Auto-copy", onOff(c.AutoCopy), onOff(d.AutoCopy)})
	}
	if c.ShowNotifications != d.ShowNotifications {
		cs = append(cs, Change{"Notifications", onOff(c.ShowNotifications), onOff(d.ShowNotifications)})
	}
	if c.UseGpu != d.UseGpu {
		cs = append(cs, Change{"Use GPU", onOff(c.UseGpu), onOff(d.UseGpu)})
	}
	if c.GpuDevice != d.GpuDevice {
		cs = append(cs, Change{"GPU Device", s.deviceName(c.GpuDevice), s.deviceName(d.GpuDevice)})
	}

	return cs
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// GpuDeviceRenderer builds a device display lookup from the fetched
// device list: known ids render as "Name (Backend)", or just the name
// when the backend is not reported. Unknown ids fall back to the raw id,
// e.g. while the device list has not loaded yet.
func GpuDeviceRenderer(devices []backend.GpuDevice) func(id int) string {
	return func(id int) string {
		for _, d := range devices {
			if d.ID != id {
				continue
			}
			if d.Backend == "" {
				return d.Name
			}
			return fmt.Sprintf("%s (%s)", d.Name, d.Backend)
		}
		return strconv.Itoa(id)
	}
}
