// Package provider wraps the OpenAI client calls used by the summary
// generation command: bounded retries and structured-output schema
// generation.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
)

// CallWithRetry issues a responses-API call, retrying rate-limit and server
// errors with a fixed backoff schedule.
func CallWithRetry(ctx context.Context, client *openai.Client, params responses.ResponseNewParams) (*responses.Response, error) {
	const maxRetries = 3
	rateLimitWaits := []time.Duration{65 * time.Second, 100 * time.Second, 135 * time.Second}
	serverErrorWaits := []time.Duration{5 * time.Second, 30 * time.Second, 60 * time.Second}

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		resp, err := client.Responses.New(ctx, params)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if attempt == maxRetries-1 {
			break
		}
		var wait time.Duration
		switch {
		case isRateLimitError(err):
			wait = rateLimitWaits[attempt]
		case isServerError(err):
			wait = serverErrorWaits[attempt]
		default:
			return nil, err
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("failed after %d attempts: %w", maxRetries, lastErr)
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "429") ||
		strings.Contains(s, "rate limit") ||
		strings.Contains(s, "too many requests")
}

func isServerError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "500") ||
		strings.Contains(s, "internal server error") ||
		strings.Contains(s, "server_error")
}

// GenerateSchema reflects T into a JSON schema suitable for OpenAI structured
// outputs (no references, no additional properties, all fields required).
func GenerateSchema[T any]() (map[string]any, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  false,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	var v T
	b, err := reflector.Reflect(v).MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("GenerateSchema: marshal schema: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("GenerateSchema: decode schema: %w", err)
	}
	ensureOpenAICompliance(m)
	return m, nil
}

// ensureOpenAICompliance walks the schema marking every object strict: all
// properties required, no additional properties.
func ensureOpenAICompliance(schema map[string]any) {
	if t, ok := schema["type"].(string); ok && t == "object" {
		schema["additionalProperties"] = false
		if props, ok := schema["properties"].(map[string]any); ok && len(props) > 0 {
			required := make([]string, 0, len(props))
			for name := range props {
				required = append(required, name)
			}
			schema["required"] = required
		}
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, p := range props {
			if pm, ok := p.(map[string]any); ok {
				ensureOpenAICompliance(pm)
			}
		}
	}
	if items, ok := schema["items"].(map[string]any); ok {
		ensureOpenAICompliance(items)
	}
	if ap, ok := schema["additionalProperties"].(map[string]any); ok {
		ensureOpenAICompliance(ap)
	}
}
