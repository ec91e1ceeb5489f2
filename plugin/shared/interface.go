package shared

import (
	"context"
	"net/rpc"

	"argilla-trainer/plugin/proto"

	"github.com/hashicorp/go-plugin"
	"google.golang.org/grpc"
)

const PluginName = "trainer"

// Handshake is shared by the host and the framework processes. A process that
// does not present this cookie is refused.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "TRAINER_PLUGIN",
	MagicCookieValue: "e3b7f2b0-7a0c-4d8e-9b59-2b1f4f6f3c1d",
}

var PluginMap = map[string]plugin.Plugin{
	PluginName: &TrainerPlugin{},
}

type InitRequest struct {
	Framework  string
	Task       string
	MultiLabel bool
	Model      string

	HasSeed bool
	Seed    int64

	// Dataset is the JSON encoded prepared dataset.
	Dataset []byte

	// ModelConfig and TrainerConfig are JSON objects with the framework
	// specific settings.
	ModelConfig   []byte
	TrainerConfig []byte
}

type UpdateConfigRequest struct {
	ModelConfig   []byte
	TrainerConfig []byte
}

type LabelScore struct {
	Label string
	Score float64
}

type Span struct {
	Label string
	Start int
	End   int
	Score float64
}

type PredictResult struct {
	Text   string
	Labels []LabelScore
	Tokens []string
	Spans  []Span

	// Tags holds one BIO tag per token for backends that tag tokens instead of
	// returning spans.
	Tags []string
}

// Backend is implemented by a framework process.
type Backend interface {
	Init(req InitRequest) error

	UpdateConfig(req UpdateConfigRequest) error

	Train(outputDir string) error

	Predict(texts []string) ([]PredictResult, error)

	Save(outputDir string) error

	// Describe returns a human readable summary of the loaded pipeline.
	Describe() (string, error)
}

// TrainerPlugin serves a Backend over net/rpc or gRPC. Framework processes
// written in python only speak gRPC.
type TrainerPlugin struct {
	Impl Backend
}

func (p *TrainerPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &RPCServer{Impl: p.Impl}, nil
}

func (TrainerPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &RPCClient{client: c}, nil
}

func (p *TrainerPlugin) GRPCServer(broker *plugin.GRPCBroker, s *grpc.Server) error {
	proto.RegisterTrainerServer(s, &GRPCServer{Impl: p.Impl})
	return nil
}

func (p *TrainerPlugin) GRPCClient(ctx context.Context, broker *plugin.GRPCBroker, c *grpc.ClientConn) (interface{}, error) {
	return &GRPCClient{client: proto.NewTrainerClient(c)}, nil
}
