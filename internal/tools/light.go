package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// setLightArgs are the typed arguments for set_light_state. The optional
// attributes use pointers so "not supplied" is distinguishable from zero.
type setLightArgs struct {
	EntityID   string `json:"entity_id"`
	State      string `json:"state"`
	Brightness *int   `json:"brightness"`
	ColorTemp  *int   `json:"color_temp"`
	RGBColor   []int  `json:"rgb_color"`
}

// setLightState validates the arguments, invokes light.turn_on or
// light.turn_off and returns a confirmation string. Optional attributes
// are forwarded only when the caller supplied them, and only on turn_on.
func (r *Registry) setLightState(ctx context.Context, raw json.RawMessage) (string, error) {
	var args setLightArgs
	if err := decodeArgs(raw, &args); err != nil {
		return "", err
	}

	if args.EntityID == "" {
		return "", missingParam("entity_id")
	}
	if args.State == "" {
		return "", missingParam("state")
	}
	if args.State != "on" && args.State != "off" {
		return "", fmt.Errorf("%w: state must be 'on' or 'off', got '%s'", ErrInvalidParams, args.State)
	}
	if args.RGBColor != nil && len(args.RGBColor) != 3 {
		return "", fmt.Errorf("%w: rgb_color must have exactly 3 components", ErrInvalidParams)
	}

	service := "turn_off"
	data := map[string]any{"entity_id": args.EntityID}
	if args.State == "on" {
		service = "turn_on"
		if args.Brightness != nil {
			data["brightness"] = *args.Brightness
		}
		if args.ColorTemp != nil {
			data["color_temp"] = *args.ColorTemp
		}
		if args.RGBColor != nil {
			data["rgb_color"] = args.RGBColor
		}
	}

	if err := r.client.CallService(ctx, "light", service, data); err != nil {
		return "", err
	}

	r.log.Info("light state changed", "entity_id", args.EntityID, "state", args.State)

	msg := fmt.Sprintf("Turned %s %s", args.EntityID, args.State)
	if args.State == "on" && args.Brightness != nil {
		msg += fmt.Sprintf(" (brightness %d)", *args.Brightness)
	}
	return msg, nil
}
