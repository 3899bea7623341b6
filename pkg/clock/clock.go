// Package clock converts between Gregorian instants and calendar-native
// timestamps, and provides an injectable wall-clock source.
//
// The epoch is 1792-09-22T00:00:00 in UT. The decree that introduced the
// calendar counted days from midnight at the Paris Observatory, which runs
// ahead of UT; Converter.Offset carries that shift in Gregorian seconds.
// Both directions use floor division, so instants before the epoch round
// toward the earlier second.
package clock

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/daviddao/calendrier/pkg/model"
)

// Epoch is 1792-09-22T00:00:00Z in Unix seconds.
const Epoch int64 = -5594227200

// gregorianDay is the length of a day in Gregorian (SI) seconds.
const gregorianDay = 86400

// MaxOffset bounds Converter.Offset in either direction.
const MaxOffset = gregorianDay

// maxElapsed is the largest distance from the epoch, in Gregorian seconds,
// whose native scaling fits in an int64.
const maxElapsed = math.MaxInt64 / model.SecondsPerDay

// Unix seconds accepted by FromUnix, about 2.9 million years either side
// of the epoch.
const (
	MinUnix = Epoch - maxElapsed + MaxOffset
	MaxUnix = Epoch + maxElapsed - MaxOffset
)

// Native timestamps accepted by ToUnix. Every result of FromUnix lies in
// this range.
const (
	MinTimestamp model.Timestamp = -math.MaxInt64 / gregorianDay
	MaxTimestamp model.Timestamp = math.MaxInt64 / gregorianDay
)

// ErrUnknownOffset is returned by ParseOffset for unrecognised names.
var ErrUnknownOffset = errors.New("unknown clock offset")

// Converter maps Unix seconds to native timestamps. Offset is added to UT
// before scaling.
type Converter struct {
	Offset int64
}

var (
	// Decree uses the Paris meridian offset the decree calendar was
	// computed with (18 minutes).
	Decree = Converter{Offset: 1080}

	// NoOffset counts from midnight UT.
	NoOffset = Converter{Offset: 0}

	// AverageOffset uses the mean Paris offset over the covered range.
	AverageOffset = Converter{Offset: 1029}
)

// ParseOffset resolves a configuration value to a Converter. Accepted
// values are "decree" (also the empty string), "none", "average", or an
// integer number of seconds no larger than a day.
func ParseOffset(name string) (Converter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "decree", "paris":
		return Decree, nil
	case "none", "ut", "utc":
		return NoOffset, nil
	case "average", "avg":
		return AverageOffset, nil
	}
	secs, err := strconv.ParseInt(strings.TrimSpace(name), 10, 64)
	if err != nil {
		return Converter{}, fmt.Errorf("%w: %q", ErrUnknownOffset, name)
	}
	if secs < -MaxOffset || secs > MaxOffset {
		return Converter{}, fmt.Errorf("%w: %q exceeds one day", ErrUnknownOffset, name)
	}
	return Converter{Offset: secs}, nil
}

func (c Converter) checkOffset() error {
	return model.CheckRange("offset", c.Offset, -MaxOffset, MaxOffset)
}

// FromUnix converts Unix seconds to a native timestamp. Instants outside
// [MinUnix, MaxUnix] return model.ErrOutOfRange.
func (c Converter) FromUnix(unix int64) (model.Timestamp, error) {
	if err := c.checkOffset(); err != nil {
		return 0, err
	}
	if err := model.CheckRange("unix time", unix, MinUnix, MaxUnix); err != nil {
		return 0, err
	}
	elapsed := unix - Epoch + c.Offset
	return model.Timestamp(model.FloorDiv(elapsed*model.SecondsPerDay, gregorianDay)), nil
}

// ToUnix converts a native timestamp back to Unix seconds. Timestamps
// outside [MinTimestamp, MaxTimestamp] return model.ErrOutOfRange.
func (c Converter) ToUnix(ts model.Timestamp) (int64, error) {
	if err := c.checkOffset(); err != nil {
		return 0, err
	}
	if err := model.CheckRange("timestamp", ts.Seconds(), int64(MinTimestamp), int64(MaxTimestamp)); err != nil {
		return 0, err
	}
	return model.FloorDiv(ts.Seconds()*gregorianDay, model.SecondsPerDay) + Epoch - c.Offset, nil
}

// FromTime converts t to a native timestamp. Sub-second precision is
// dropped.
func (c Converter) FromTime(t time.Time) (model.Timestamp, error) {
	return c.FromUnix(t.Unix())
}

// ToTime converts ts to a UTC time.Time.
func (c Converter) ToTime(ts model.Timestamp) (time.Time, error) {
	unix, err := c.ToUnix(ts)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(unix, 0).UTC(), nil
}

// Clock reads the current time as a native timestamp.
type Clock struct {
	now  func() time.Time
	conv Converter
}

// New returns a Clock backed by now. A nil now uses time.Now.
func New(now func() time.Time, conv Converter) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, conv: conv}
}

// System returns a Clock on the system wall clock with the decree offset.
func System() *Clock { return New(time.Now, Decree) }

// Now returns the current native timestamp.
func (c *Clock) Now() (model.Timestamp, error) { return c.conv.FromTime(c.now()) }

// Converter returns the converter the clock uses.
func (c *Clock) Converter() Converter { return c.conv }
