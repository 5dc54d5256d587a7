package chatbot

import "context"

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
	RoleTool  Role = "tool"
)

// Message is one turn sent to the model. Tool turns carry Results for the
// Calls of the preceding model turn.
type Message struct {
	Role    Role
	Text    string
	Calls   []Call
	Results []Result
}

type Request struct {
	System    string
	Messages  []Message
	Tools     bool
	MaxOutput int32
}

type Reply struct {
	Text  string
	Calls []Call
}

type LLM interface {
	Generate(ctx context.Context, req Request) (Reply, error)
	// Stream calls onText for every text fragment as it arrives.
	Stream(ctx context.Context, req Request, onText func(string) error) (Reply, error)
	Model() string
}
