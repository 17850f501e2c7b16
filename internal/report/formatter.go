package report

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/nerrad567/gray-logic-assist/internal/area"
	"github.com/nerrad567/gray-logic-assist/internal/color"
	"github.com/nerrad567/gray-logic-assist/internal/hass"
	"github.com/nerrad567/gray-logic-assist/internal/infrastructure/logging"
)

// DefaultPattern matches the entity ids the report covers when the caller
// supplies no filter.
const DefaultPattern = `^(light|switch)\.`

// ErrBadPattern is returned when the caller-supplied filter is not a valid
// regular expression.
var ErrBadPattern = errors.New("report: invalid filter pattern")

// StatesClient is the subset of the Home Assistant client the formatter
// depends on.
type StatesClient interface {
	States(ctx context.Context) ([]hass.EntityState, error)
}

// AreaResolver supplies the per-request entity→area lookup.
type AreaResolver interface {
	Resolve(ctx context.Context) map[string]string
}

// Formatter produces the grouped-by-room text report.
type Formatter struct {
	client StatesClient
	areas  AreaResolver
	log    *logging.Logger
}

// NewFormatter creates a Formatter.
func NewFormatter(client StatesClient, areas AreaResolver, log *logging.Logger) *Formatter {
	return &Formatter{
		client: client,
		areas:  areas,
		log:    log.With("component", "report"),
	}
}

// Render fetches current states and produces the text report for entities
// whose id matches pattern (DefaultPattern when empty). An invalid pattern
// returns ErrBadPattern; an upstream states failure propagates unchanged.
func (f *Formatter) Render(ctx context.Context, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPattern, err)
	}

	states, err := f.client.States(ctx)
	if err != nil {
		return "", err
	}

	// Registry failures degrade inside the resolver; this never fails.
	lookup := f.areas.Resolve(ctx)

	grouped := make(map[string][]hass.EntityState)
	total := 0
	for _, s := range states {
		if !re.MatchString(s.EntityID) {
			continue
		}
		name := area.Name(lookup, s.EntityID)
		grouped[name] = append(grouped[name], s)
		total++
	}

	f.log.Debug("report built", "pattern", pattern, "matched", total)

	if total == 0 {
		return fmt.Sprintf("No entities found matching pattern '%s'", pattern), nil
	}

	areaNames := make([]string, 0, len(grouped))
	for name := range grouped {
		areaNames = append(areaNames, name)
	}
	sort.Strings(areaNames)

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d entities matching pattern '%s'\n", total, pattern)

	for _, areaName := range areaNames {
		entities := grouped[areaName]
		sort.Slice(entities, func(i, j int) bool {
			return entities[i].Name() < entities[j].Name()
		})

		fmt.Fprintf(&b, "\n%s:\n", areaName)
		for _, e := range entities {
			writeEntity(&b, e)
		}
	}

	return b.String(), nil
}

// writeEntity renders one entity line plus its optional attribute lines.
func writeEntity(b *strings.Builder, e hass.EntityState) {
	fmt.Fprintf(b, "  %s (%s): %s\n", e.Name(), e.EntityID, e.State)

	attrs := e.Attributes

	if attrs.Brightness != nil {
		fmt.Fprintf(b, "    brightness: %d%%\n", brightnessPercent(*attrs.Brightness))
	}

	switch {
	case len(attrs.RGBColor) == 3:
		rgb := attrs.RGBColor
		if name, ok := color.Classify(rgb[0], rgb[1], rgb[2]); ok {
			fmt.Fprintf(b, "    rgb: (%d, %d, %d) %s\n", rgb[0], rgb[1], rgb[2], name)
		} else {
			fmt.Fprintf(b, "    rgb: (%d, %d, %d)\n", rgb[0], rgb[1], rgb[2])
		}
	case attrs.ColorTemp != nil:
		// Colour temperature is only interesting when no RGB value is set.
		fmt.Fprintf(b, "    color_temp: %d mireds\n", *attrs.ColorTemp)
	}

	if attrs.DeviceClass != "" {
		fmt.Fprintf(b, "    device_class: %s\n", attrs.DeviceClass)
	}
}

// brightnessPercent converts the 0-255 upstream scale to a rounded
// percentage.
func brightnessPercent(raw int) int {
	return int(math.Round(float64(raw) / 255 * 100))
}
