package prompt

import (
	"fmt"
	"os"
	"strconv"

	"sigs.k8s.io/yaml"
)

// LoadAnswers reads preset answers from a YAML or JSON file. Scalar values of
// any type are converted to strings; nested values are rejected.
func LoadAnswers(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}
	return ParseAnswers(data)
}

// ParseAnswers decodes preset answers.
func ParseAnswers(data []byte) (Answers, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answers: %w", err)
	}

	answers := make(Answers, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			answers[key] = ""
		case string:
			answers[key] = v
		case bool:
			answers[key] = strconv.FormatBool(v)
		case float64:
			answers[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int64:
			answers[key] = strconv.FormatInt(v, 10)
		default:
			return nil, fmt.Errorf("parsing answers: %s must be a scalar, got %T", key, value)
		}
	}
	return answers, nil
}
