package agents

import (
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
)

// HandoffToolPrefix is the naming convention that marks a function call as
// a conversational handoff: transfer_to_<agent name>.
const HandoffToolPrefix = "transfer_to_"

// Tool describes one function the active agent exposes to the session.
type Tool struct {
	Type        string
	Name        string
	Description string
	Parameters  *jsonschema.Schema
}

// NewTool builds a tool definition, deriving the parameter schema from the
// given parameters struct (or pointer to one).
func NewTool(name, description string, parameters any) Tool {
	tool := Tool{Type: "function", Name: name, Description: description}
	if parameters == nil {
		return tool
	}

	reflector := jsonschema.Reflector{DoNotReference: true}
	if reflect.TypeOf(parameters).Kind() == reflect.Ptr {
		tool.Parameters = reflector.ReflectFromType(reflect.TypeOf(parameters).Elem())
	} else {
		tool.Parameters = reflector.Reflect(parameters)
	}
	return tool
}

func newHandoffTool(target Agent) Tool {
	description := target.PublicDescription
	if description == "" {
		description = "Transfer the conversation to the " + target.Name + " agent."
	}
	return NewTool(HandoffToolPrefix+target.Name, description, nil)
}

// HandoffTarget extracts the agent key from a handoff tool name. The
// second return is false when the name does not follow the convention.
func HandoffTarget(toolName string) (string, bool) {
	key, found := strings.CutPrefix(toolName, HandoffToolPrefix)
	if !found || key == "" {
		return "", false
	}
	return key, true
}
