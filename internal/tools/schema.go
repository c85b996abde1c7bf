package tools

import "encoding/json"

// Property is one JSON-Schema property of a tool's input.
type Property struct {
	Type        ParamType `json:"type"`
	Description string    `json:"description,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

// InputSchema is the JSON-Schema object advertised for a tool.
type InputSchema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

// Definition is the advertised form of a tool: name, description and schema.
type Definition struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// RawSchema returns the input schema as JSON.
func (d Definition) RawSchema() json.RawMessage {
	data, err := json.Marshal(d.InputSchema)
	if err != nil {
		// Schemas hold only strings and nested Property values.
		return json.RawMessage(`{"type":"object","properties":{}}`)
	}
	return data
}

// Definition derives the advertised definition of the route.
func (r Route) Definition() Definition {
	schema := InputSchema{
		Type:       "object",
		Properties: make(map[string]Property, len(r.Params)),
	}
	for _, p := range r.Params {
		prop := Property{Type: p.Type, Description: p.Description}
		if p.Type == TypeArray {
			items := p.Items
			if items == "" {
				items = TypeString
			}
			prop.Items = &Property{Type: items}
		}
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return Definition{Name: r.Name, Description: r.Description, InputSchema: schema}
}
