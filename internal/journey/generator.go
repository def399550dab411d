package journey

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Completer is the text-completion backend. The OpenRouter client satisfies
// it; tests substitute a stub.
type Completer interface {
	// Configured reports whether a credential is present.
	Configured() bool
	// Complete sends one system+user exchange and returns the completion text.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Generator produces journey payloads, preferring the language model and
// falling back to the template library. Generate never fails: every model
// error is logged and absorbed by the fallback.
type Generator struct {
	llm    Completer
	logger *zap.Logger
}

func NewGenerator(llm Completer, logger *zap.Logger) *Generator {
	return &Generator{llm: llm, logger: logger}
}

// Generate returns the journey document for the emotion pair, as raw JSON
// ready to persist and return verbatim.
func (g *Generator) Generate(ctx context.Context, from, to, userContext string) json.RawMessage {
	if g.llm == nil || !g.llm.Configured() {
		g.logger.Info("[Generator] No model credential configured, using template",
			zap.String("from", from), zap.String("to", to))
		return g.template(from, to)
	}

	content, err := g.llm.Complete(ctx, systemPrompt, buildUserPrompt(from, to, userContext))
	if err != nil {
		g.logger.Error("[Generator] Model call failed, using template",
			zap.Error(err), zap.String("from", from), zap.String("to", to))
		return g.template(from, to)
	}

	payload, err := parsePayload(content)
	if err != nil {
		g.logger.Error("[Generator] Could not parse model output, using template",
			zap.Error(err), zap.String("from", from), zap.String("to", to))
		return g.template(from, to)
	}
	return payload
}

func (g *Generator) template(from, to string) json.RawMessage {
	data, err := json.Marshal(Template(from, to))
	if err != nil {
		// Template is a fixed struct; this cannot happen at runtime.
		g.logger.Error("[Generator] Could not marshal template", zap.Error(err))
		return json.RawMessage(`{}`)
	}
	return data
}
