package perf

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LoadWPMTarget reads the persisted WPM target. The boolean is false when no
// valid positive target is stored.
func LoadWPMTarget(ctx context.Context, kv KV) (int, bool, error) {
	raw, ok, err := kv.Get(ctx, WPMTargetKey)
	if err != nil || !ok {
		return 0, false, err
	}
	wpm, err := parseWPM(raw)
	if err != nil || wpm <= 0 {
		return 0, false, nil
	}
	return wpm, true, nil
}

// SaveWPMTarget persists a positive WPM target.
func SaveWPMTarget(ctx context.Context, kv KV, wpm int) error {
	if wpm <= 0 {
		return fmt.Errorf("wpm target must be > 0, got %d", wpm)
	}
	raw, err := json.Marshal(wpm)
	if err != nil {
		return err
	}
	return kv.Set(ctx, WPMTargetKey, raw)
}

// parseWPM accepts a JSON number or a JSON/plain string holding an integer.
func parseWPM(raw []byte) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strconv.Atoi(strings.TrimSpace(s))
	}
	return strconv.Atoi(strings.TrimSpace(string(raw)))
}
