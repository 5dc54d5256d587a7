package chatbot

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// GenAIClient is the Gemini backed LLM.
type GenAIClient struct {
	client *genai.Client
	model  string
	tools  []*genai.Tool
}

func NewGenAIClient(ctx context.Context, apiKey, baseURL, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("GenAI API key is required")
	}
	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create GenAI client")
	}
	return &GenAIClient{
		client: client,
		model:  model,
		tools:  []*genai.Tool{{FunctionDeclarations: Declarations()}},
	}, nil
}

func (g *GenAIClient) Model() string {
	return g.model
}

func (g *GenAIClient) Generate(ctx context.Context, req Request) (Reply, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents(req.Messages), g.config(req))
	if err != nil {
		return Reply{}, errors.Wrap(err, "generate content")
	}
	return reply(resp), nil
}

func (g *GenAIClient) Stream(ctx context.Context, req Request, onText func(string) error) (Reply, error) {
	var (
		out  Reply
		text strings.Builder
	)
	for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents(req.Messages), g.config(req)) {
		if err != nil {
			return Reply{}, errors.Wrap(err, "stream content")
		}
		r := reply(resp)
		out.Calls = append(out.Calls, r.Calls...)
		if r.Text == "" {
			continue
		}
		text.WriteString(r.Text)
		if err := onText(r.Text); err != nil {
			return Reply{}, err
		}
	}
	out.Text = text.String()
	return out, nil
}

func (g *GenAIClient) config(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Tools {
		cfg.Tools = g.tools
	}
	if req.MaxOutput > 0 {
		cfg.MaxOutputTokens = req.MaxOutput
	}
	return cfg
}

func contents(msgs []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleModel:
			var parts []*genai.Part
			if m.Text != "" {
				parts = append(parts, genai.NewPartFromText(m.Text))
			}
			for _, c := range m.Calls {
				parts = append(parts, genai.NewPartFromFunctionCall(c.Name, c.Args))
			}
			if len(parts) > 0 {
				out = append(out, genai.NewContentFromParts(parts, genai.RoleModel))
			}
		case RoleTool:
			parts := make([]*genai.Part, 0, len(m.Results))
			for _, r := range m.Results {
				parts = append(parts, genai.NewPartFromFunctionResponse(r.Call.Name, r.Response()))
			}
			if len(parts) > 0 {
				out = append(out, genai.NewContentFromParts(parts, genai.RoleUser))
			}
		default:
			out = append(out, genai.NewContentFromText(m.Text, genai.RoleUser))
		}
	}
	return out
}

func reply(resp *genai.GenerateContentResponse) Reply {
	var r Reply
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return r
	}
	var text strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		switch {
		case p.FunctionCall != nil:
			r.Calls = append(r.Calls, Call{ID: p.FunctionCall.ID, Name: p.FunctionCall.Name, Args: p.FunctionCall.Args})
		case p.Text != "" && !p.Thought:
			text.WriteString(p.Text)
		}
	}
	r.Text = text.String()
	return r
}
