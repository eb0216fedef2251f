package output

import (
	"encoding/json"

	yml "sigs.k8s.io/yaml"
)

var Yaml = &yamlOutput{}

var Json = &jsonOutput{}

// Output serializes normalized records into the textual payload of a tool result.
type Output interface {
	// GetName returns the name of the output format, used by the CLI to identify the output format.
	GetName() string
	// Marshal renders the given value as a string.
	Marshal(v any) (string, error)
}

var Outputs = []Output{
	Yaml,
	Json,
}

var Names []string

func FromString(name string) Output {
	for _, output := range Outputs {
		if output.GetName() == name {
			return output
		}
	}
	return nil
}

type yamlOutput struct{}

func (p *yamlOutput) GetName() string {
	return "yaml"
}

func (p *yamlOutput) Marshal(v any) (string, error) {
	return MarshalYaml(v)
}

type jsonOutput struct{}

func (p *jsonOutput) GetName() string {
	return "json"
}

func (p *jsonOutput) Marshal(v any) (string, error) {
	ret, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

func MarshalYaml(v any) (string, error) {
	ret, err := yml.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(ret), nil
}

func init() {
	Names = make([]string, 0)
	for _, output := range Outputs {
		Names = append(Names, output.GetName())
	}
}
