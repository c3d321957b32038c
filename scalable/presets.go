package scalable

import (
	"fmt"
	"sort"
)

// ForEmails suits deduplicating address lists: a strict error rate and a
// first layer large enough for a typical mailing list.
func ForEmails() Config {
	return Config{ErrorRate: 0.001, InitialCapacity: 100_000, Tightening: DefaultTightening}
}

// ForURLs suits crawler style "seen" sets, where the volume is high and an
// occasional skipped URL is acceptable.
func ForURLs() Config {
	return Config{ErrorRate: 0.01, InitialCapacity: 1_000_000, Tightening: DefaultTightening}
}

// ForDeduplication starts small and keeps the aggregate error rate very low
// for streams whose size is unknown.
func ForDeduplication() Config {
	return Config{ErrorRate: 0.0001, InitialCapacity: DefaultInitialCapacity, Tightening: 0.9}
}

var presets = map[string]func() Config{
	"emails": ForEmails,
	"urls":   ForURLs,
	"dedup":  ForDeduplication,
}

// Preset returns the named preset configuration.
func Preset(name string) (Config, error) {
	fn, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// PresetNames lists the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
