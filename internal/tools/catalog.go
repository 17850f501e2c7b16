package tools

// Tool names as exposed via tools/list and dispatched by tools/call.
const (
	ToolListEntities   = "list_entities"
	ToolSetLightState  = "set_light_state"
	ToolSetSwitchState = "set_switch_state"
)

// Descriptor describes one tool for the tools/list response.
type Descriptor struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	InputSchema Schema `json:"inputSchema"`
}

// Schema is a JSON-Schema-style parameter descriptor.
type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties,omitempty"`
	Required   []string            `json:"required,omitempty"`
}

// Property describes one schema property.
type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Items       *Property `json:"items,omitempty"`
	MinItems    int       `json:"minItems,omitempty"`
	MaxItems    int       `json:"maxItems,omitempty"`
}

// catalog is the static tool catalog. It never changes at runtime.
var catalog = []Descriptor{
	{
		Name:        ToolListEntities,
		Description: "List the current state of lights and switches, grouped by room",
		InputSchema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"pattern": {
					Type:        "string",
					Description: "Regular expression over entity ids; defaults to lights and switches",
				},
			},
		},
	},
	{
		Name:        ToolSetLightState,
		Description: "Turn a light on or off, optionally setting brightness, colour temperature or RGB colour",
		InputSchema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"entity_id": {
					Type:        "string",
					Description: "Light entity id, e.g. light.kitchen",
				},
				"state": {
					Type: "string",
					Enum: []string{"on", "off"},
				},
				"brightness": {
					Type:        "integer",
					Description: "Brightness 0-255, applied when turning on",
				},
				"color_temp": {
					Type:        "integer",
					Description: "Colour temperature in mireds, applied when turning on",
				},
				"rgb_color": {
					Type:        "array",
					Description: "RGB triple, three integers 0-255",
					Items:       &Property{Type: "integer"},
					MinItems:    3,
					MaxItems:    3,
				},
			},
			Required: []string{"entity_id", "state"},
		},
	},
	{
		Name:        ToolSetSwitchState,
		Description: "Turn a switch on or off",
		InputSchema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"entity_id": {
					Type:        "string",
					Description: "Switch entity id, e.g. switch.heater",
				},
				"state": {
					Type: "string",
					Enum: []string{"on", "off"},
				},
			},
			Required: []string{"entity_id", "state"},
		},
	},
}

// Catalog returns the static tool descriptors.
func Catalog() []Descriptor {
	return catalog
}
