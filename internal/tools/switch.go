package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// setSwitchArgs are the typed arguments for set_switch_state.
type setSwitchArgs struct {
	EntityID string `json:"entity_id"`
	State    string `json:"state"`
}

// setSwitchState validates the arguments, invokes switch.turn_on or
// switch.turn_off and returns a confirmation string. Switches carry no
// extra attributes.
func (r *Registry) setSwitchState(ctx context.Context, raw json.RawMessage) (string, error) {
	var args setSwitchArgs
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

	service := "turn_off"
	if args.State == "on" {
		service = "turn_on"
	}

	data := map[string]any{"entity_id": args.EntityID}
	if err := r.client.CallService(ctx, "switch", service, data); err != nil {
		return "", err
	}

	r.log.Info("switch state changed", "entity_id", args.EntityID, "state", args.State)

	return fmt.Sprintf("Turned %s %s", args.EntityID, args.State), nil
}
